package report

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	pageMargin   = 40
	lineHeight   = 16
	headerHeight = 96
	glyphHeight  = 13
)

var (
	pageColor   = color.RGBA{255, 255, 255, 255}
	inkColor    = color.RGBA{20, 20, 20, 255}
	bandColor   = color.RGBA{95, 95, 215, 255}
	headingInk  = color.RGBA{60, 60, 160, 255}
	bandInkText = color.RGBA{255, 255, 255, 255}
)

type pageLine struct {
	text    string
	heading bool
}

// WritePNG renders a single-page preview of the report, width pixels wide.
// The page grows vertically to fit every section.
func WritePNG(w io.Writer, r Report, width int) error {
	if width < 300 {
		return fmt.Errorf("page width too small: %d", width)
	}
	face := basicfont.Face7x13
	textWidth := width - 2*pageMargin

	var lines []pageLine
	for _, s := range r.Sections {
		lines = append(lines, pageLine{text: s.Heading, heading: true})
		for _, l := range wrap(face, s.Body, textWidth) {
			lines = append(lines, pageLine{text: l})
		}
		lines = append(lines, pageLine{})
	}
	lines = append(lines, pageLine{text: "Provider Signature: ________________________________"})

	height := headerHeight + pageMargin + len(lines)*lineHeight + pageMargin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(pageColor), image.Point{}, draw.Src)

	drawHeader(img, face, r, width)

	y := headerHeight + pageMargin
	for _, l := range lines {
		if l.heading {
			drawString(img, face, headingInk, pageMargin, y, l.text)
			// Faux bold: basicfont has a single weight.
			drawString(img, face, headingInk, pageMargin+1, y, l.text)
		} else if l.text != "" {
			drawString(img, face, inkColor, pageMargin, y, l.text)
		}
		y += lineHeight
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawHeader(img *image.RGBA, face font.Face, r Report, width int) {
	band := image.Rect(0, 0, width, headerHeight)
	draw.Draw(img, band, image.NewUniform(bandColor), image.Point{}, draw.Src)

	name := strings.TrimSpace(r.Clinic.ClinicName)
	if name != "" {
		// Render the clinic name at base size, then scale it up 2x.
		baseWidth := font.MeasureString(face, name).Ceil()
		textImg := image.NewRGBA(image.Rect(0, 0, baseWidth, glyphHeight+3))
		drawString(textImg, face, bandInkText, 0, 0, name)

		scale := 2
		if baseWidth*scale > width-2*pageMargin {
			scale = 1
		}
		dst := image.Rect(pageMargin, 10, pageMargin+baseWidth*scale, 10+textImg.Bounds().Dy()*scale)
		draw.BiLinear.Scale(img, dst, textImg, textImg.Bounds(), draw.Over, nil)
	}

	sub := strings.TrimSpace(strings.Join(nonEmpty(r.Clinic.ClinicAddress, r.Clinic.ClinicPhone), "  "))
	drawString(img, face, bandInkText, pageMargin, 48, sub)
	drawString(img, face, bandInkText, pageMargin, 66, strings.TrimSpace(r.ExamName+"   "+r.Patient))
}

// drawString draws s with its top-left corner at (x, y).
func drawString(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + glyphHeight - 2)},
	}
	d.DrawString(s)
}

// wrap splits text into lines no wider than maxWidth. Explicit newlines are
// kept; a single word longer than the line is placed on its own line.
func wrap(face font.Face, text string, maxWidth int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if font.MeasureString(face, candidate).Ceil() <= maxWidth {
				line = candidate
				continue
			}
			out = append(out, line)
			line = w
		}
		out = append(out, line)
	}
	return out
}

func nonEmpty(items ...string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
