package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel layout in unscaled pixels.
const (
	padding = 4
	border  = 1
)

var (
	panelColor  = color.RGBA{0, 0, 0, 160}
	borderColor = color.RGBA{96, 96, 96, 255}
)

// Render draws text as white glyphs on a translucent bordered panel.
// The result is premultiplied RGBA with the first row at the top. Empty
// text renders to nil.
func Render(text string) *image.RGBA {
	if text == "" {
		return nil
	}

	face := basicfont.Face7x13
	lines := strings.Split(text, "\n")

	textW := 0
	for _, line := range lines {
		textW = max(textW, font.MeasureString(face, line).Ceil())
	}
	lineH := face.Height

	w := textW + 2*(padding+border)
	h := len(lines)*lineH + 2*(padding+border)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	draw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)
	inner := img.Bounds().Inset(border)
	draw.Draw(img, inner, image.NewUniform(panelColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(border+padding, border+padding+i*lineH+face.Ascent)
		d.DrawString(line)
	}
	return img
}
