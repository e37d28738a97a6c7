package main

import (
	"log"
	"os"
	"path/filepath"

	"floatingclock/internal/assets"
)

func main() {
	data, err := assets.EncodePNG(assets.RenderIcon(256))
	if err != nil {
		log.Fatalf("encode icon: %v", err)
	}

	dir := filepath.Join("assets", "icons")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("create %s: %v", dir, err)
	}

	for _, name := range []string{"tray.png", "app.png"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}
}
