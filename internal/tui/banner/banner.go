// Package banner renders words as large block art using half-block characters.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// face is the bitmap font used for banners. Each glyph is 7x13 pixels,
// which becomes 7 columns by 7 rows of half blocks.
var face font.Face = basicfont.Face7x13

// Width returns the number of terminal columns Render needs for text.
func Width(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// Render draws text and converts it to half-block art (▀▄█).
func Render(text string) string {
	if text == "" {
		return ""
	}

	metrics := face.Metrics()
	width := Width(text)
	height := metrics.Height.Ceil()
	if height%2 == 1 {
		height++
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)

	return trimBlankRows(imageToHalfBlocks(img, width, height/2))
}

// imageToHalfBlocks converts a grayscale image to half-block art.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := pixelOn(img, col, row*2)
			bottomOn := pixelOn(img, col, row*2+1)

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func pixelOn(img *image.Gray, x, y int) bool {
	b := img.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return false
	}
	return img.GrayAt(x, y).Y > 40
}

// trimBlankRows drops leading and trailing rows that contain only spaces.
func trimBlankRows(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// GetCached returns a cached banner or renders a new one.
func GetCached(text string) string {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[text]; ok {
		return cached
	}
	rendered := Render(text)
	cache[text] = rendered
	return rendered
}
