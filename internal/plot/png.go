package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/litescript/ls-blackbody/internal/format"
	"github.com/litescript/ls-blackbody/internal/physics"
	"github.com/litescript/ls-blackbody/internal/theme"
)

// PNGOptions controls raster chart output.
type PNGOptions struct {
	Width  int
	Height int
	Theme  theme.Theme
	Title  string
}

// DefaultPNGOptions returns a 960×540 light-theme chart.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{Width: 960, Height: 540, Theme: theme.Light}
}

// Chart margins in pixels.
const (
	marginLeft   = 80
	marginRight  = 24
	marginTop    = 44
	marginBottom = 64
	stripHeight  = 8
	yTicks       = 5
)

// plotArea maps spectrum coordinates to pixels.
type plotArea struct {
	rect     image.Rectangle
	windowUm float64
	axisMax  float64
}

func (p plotArea) x(wavelengthUm float64) int {
	return p.rect.Min.X + int(math.Round(wavelengthUm/p.windowUm*float64(p.rect.Dx())))
}

func (p plotArea) y(radiance float64) int {
	return p.rect.Max.Y - int(math.Round(radiance/p.axisMax*float64(p.rect.Dy())))
}

// RenderImage draws the spectrum chart.
func RenderImage(spec physics.Spectrum, opts PNGOptions) (*image.RGBA, error) {
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("image %dx%d too small", opts.Width, opts.Height)
	}
	if spec.WindowUm <= 0 || len(spec.Samples) == 0 {
		return nil, errors.New("empty spectrum")
	}

	pal := theme.PaletteFor(opts.Theme)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(hexColor(pal.Background)), image.Point{}, draw.Src)

	area := plotArea{
		rect:     image.Rect(marginLeft, marginTop, opts.Width-marginRight, opts.Height-marginBottom),
		windowUm: spec.WindowUm,
		axisMax:  spec.AxisMax(),
	}

	drawGrid(img, area, pal)
	drawCurve(img, area, spec, opts.Theme)
	drawPeak(img, area, spec.PeakUm, pal)
	drawVisibleStrip(img, area)
	drawLabels(img, area, pal, opts.Title)

	return img, nil
}

// WritePNG renders the spectrum chart and encodes it as PNG.
func WritePNG(w io.Writer, spec physics.Spectrum, opts PNGOptions) error {
	img, err := RenderImage(spec, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawGrid(img *image.RGBA, area plotArea, pal theme.Palette) {
	grid := hexColor(pal.Grid)
	axis := hexColor(pal.TextSecondary)

	for i := 0; i <= yTicks; i++ {
		y := area.rect.Max.Y - i*area.rect.Dy()/yTicks
		hline(img, area.rect.Min.X, area.rect.Max.X, y, grid)
	}
	step := TickStep(area.windowUm)
	for wav := step; wav < area.windowUm+1e-9; wav += step {
		vline(img, area.x(wav), area.rect.Min.Y, area.rect.Max.Y, grid)
	}

	hline(img, area.rect.Min.X, area.rect.Max.X, area.rect.Max.Y, axis)
	vline(img, area.rect.Min.X, area.rect.Min.Y, area.rect.Max.Y, axis)
}

func drawCurve(img *image.RGBA, area plotArea, spec physics.Spectrum, th theme.Theme) {
	line := hexColor(theme.ColorForTemperature(spec.TempK, th))
	fill := hexColor(theme.FillColor(spec.TempK, th))

	prevY := area.rect.Max.Y
	for x := area.rect.Min.X + 1; x <= area.rect.Max.X; x++ {
		wav := float64(x-area.rect.Min.X) / float64(area.rect.Dx()) * area.windowUm
		y := area.y(spec.RadianceAt(wav))
		if y < area.rect.Min.Y {
			y = area.rect.Min.Y
		}

		vline(img, x, y, area.rect.Max.Y-1, fill)

		// Join to the previous column so steep flanks stay continuous.
		lo, hi := y, prevY
		if lo > hi {
			lo, hi = hi, lo
		}
		vline(img, x, lo, hi, line)
		vline(img, x, lo-1, lo, line)
		prevY = y
	}
}

func drawPeak(img *image.RGBA, area plotArea, peakUm float64, pal theme.Palette) {
	if peakUm <= 0 || peakUm > area.windowUm {
		return
	}
	c := hexColor(pal.TextSecondary)
	x := area.x(peakUm)
	for y := area.rect.Min.Y; y < area.rect.Max.Y; y++ {
		if (y/4)%2 == 0 {
			img.Set(x, y, c)
		}
	}
	drawText(img, x+4, area.rect.Min.Y+12, "peak: "+asciiMicrons(peakUm), c)
}

// drawVisibleStrip paints a 400-750 nm rainbow under the x axis.
func drawVisibleStrip(img *image.RGBA, area plotArea) {
	x0 := area.x(format.VisibleMinUm)
	x1 := area.x(format.VisibleMaxUm)
	if x0 >= area.rect.Max.X {
		return
	}
	if x1 > area.rect.Max.X {
		x1 = area.rect.Max.X
	}
	top := area.rect.Max.Y + 2
	for x := x0; x < x1; x++ {
		c := SpectrumColor(area.windowUm * float64(x-area.rect.Min.X) / float64(area.rect.Dx()))
		for y := top; y < top+stripHeight; y++ {
			img.Set(x, y, c)
		}
	}
}

func drawLabels(img *image.RGBA, area plotArea, pal theme.Palette, title string) {
	text := hexColor(pal.Text)
	muted := hexColor(pal.TextSecondary)

	if title != "" {
		drawText(img, area.rect.Min.X, 24, title, text)
	}

	step := TickStep(area.windowUm)
	for wav := 0.0; wav < area.windowUm+1e-9; wav += step {
		label := TickLabel(wav)
		drawText(img, area.x(wav)-len(label)*7/2, area.rect.Max.Y+stripHeight+18, label, muted)
	}
	drawText(img, area.rect.Min.X+area.rect.Dx()/2-56, img.Bounds().Dy()-12, "Wavelength (um)", muted)

	for i := 0; i <= yTicks; i++ {
		v := area.axisMax * float64(i) / yTicks
		y := area.rect.Max.Y - i*area.rect.Dy()/yTicks
		drawText(img, 6, y+4, fmt.Sprintf("%.2e", v), muted)
	}
	drawText(img, 6, area.rect.Min.Y-12, "Radiance (MW/m2/sr/um)", muted)
}

// TickStep picks a round x-axis step giving at most 10 ticks.
func TickStep(window float64) float64 {
	for _, s := range []float64{0.1, 0.2, 0.25, 0.5, 1, 2, 2.5, 5, 10} {
		if window/s <= 10 {
			return s
		}
	}
	return 10
}

// SpectrumColor approximates the perceived colour of a visible wavelength:
// hue runs from violet at 0.4 μm to red at 0.75 μm.
func SpectrumColor(wavelengthUm float64) colorful.Color {
	t := (wavelengthUm - format.VisibleMinUm) / (format.VisibleMaxUm - format.VisibleMinUm)
	t = math.Min(1, math.Max(0, t))
	return colorful.Hsv(270*(1-t), 1, 1)
}

func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.Color) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

// hexColor parses a palette colour; bad input draws magenta so it stands out.
func hexColor(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// asciiMicrons formats a wavelength for the built-in bitmap font, which has no Greek glyphs.
func asciiMicrons(um float64) string {
	return fmt.Sprintf("%.2f um", um)
}

// TickLabel formats an axis value with at most two decimals and no trailing zeros.
func TickLabel(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
