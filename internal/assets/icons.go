// Package assets renders the application and tray icons in-process.
package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"fyne.io/fyne/v2"
)

// IconSize is the edge length of the generated icon in pixels
const IconSize = 64

var (
	bgColor   = color.RGBA{32, 33, 35, 255}    // Dark bg
	faceColor = color.RGBA{237, 237, 237, 255} // Dial
	handColor = color.RGBA{32, 33, 35, 255}    // Hands
	tickColor = color.RGBA{88, 140, 236, 255}  // Hour marks
)

var (
	iconOnce sync.Once
	iconData []byte
)

// RenderIcon draws a clock face showing 10:10 on a rounded dark square
func RenderIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	radius := s * 12 / 64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if inRoundedRect(float64(x), float64(y), 2, 2, s-4, s-4, radius) {
				img.Set(x, y, bgColor)
			}
		}
	}

	cx, cy := s/2, s/2
	dial := s * 0.36
	fillCircle(img, cx, cy, dial, faceColor)

	for h := 0; h < 12; h++ {
		angle := float64(h) * math.Pi / 6
		px := cx + math.Sin(angle)*dial*0.8
		py := cy - math.Cos(angle)*dial*0.8
		fillCircle(img, px, py, s/40, tickColor)
	}

	// 10:10
	drawHand(img, cx, cy, 10*math.Pi/6+10*math.Pi/360, dial*0.5, s/24, handColor)
	drawHand(img, cx, cy, 2*math.Pi/6, dial*0.75, s/32, handColor)
	fillCircle(img, cx, cy, s/24, handColor)

	return img
}

// EncodePNG encodes img as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func iconBytes() []byte {
	iconOnce.Do(func() {
		data, err := EncodePNG(RenderIcon(IconSize))
		if err == nil {
			iconData = data
		}
	})
	return iconData
}

// TrayIcon returns the system tray icon resource
func TrayIcon() fyne.Resource {
	return fyne.NewStaticResource("tray.png", iconBytes())
}

// AppIcon returns the application icon resource
func AppIcon() fyne.Resource {
	return fyne.NewStaticResource("app.png", iconBytes())
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	b := img.Bounds()
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			if !(image.Point{X: x, Y: y}).In(b) {
				continue
			}
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

// drawHand strokes a line from the centre towards angle (radians, clockwise from 12)
func drawHand(img *image.RGBA, cx, cy, angle, length, width float64, c color.Color) {
	steps := int(length * 2)
	for i := 0; i <= steps; i++ {
		d := length * float64(i) / float64(steps)
		fillCircle(img, cx+math.Sin(angle)*d, cy-math.Cos(angle)*d, width/2, c)
	}
}

func inRoundedRect(px, py, rx, ry, rw, rh, radius float64) bool {
	if px < rx || px >= rx+rw || py < ry || py >= ry+rh {
		return false
	}

	// nearest corner centre; only points beyond it in both axes can be outside
	cx := math.Max(rx+radius, math.Min(px, rx+rw-radius))
	cy := math.Max(ry+radius, math.Min(py, ry+rh-radius))
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= radius*radius
}
