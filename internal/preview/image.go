package preview

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderImage draws an image into character cells using the upper
// half block: each cell carries two pixels, the top as foreground and
// the bottom as background. Aspect ratio is preserved inside the
// width x height budget (terminal cells are two pixels tall here).
func RenderImage(path string, width, height int) ([]StyledLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	if imgW < 1 || imgH < 1 || width < 1 || height < 1 {
		return nil, fmt.Errorf("empty image or viewport")
	}

	// Pixel canvas is width x (2*height); shrink to preserve aspect.
	cols, rows := width, height
	if scaled := imgH * cols / (2 * imgW); scaled < rows {
		rows = scaled
	} else {
		cols = 2 * imgW * rows / imgH
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	lines := make([]StyledLine, rows)
	for row := 0; row < rows; row++ {
		spans := make([]Span, 0, cols)
		for col := 0; col < cols; col++ {
			top := sampleRegion(img, bounds, col, row*2, cols, rows*2)
			bottom := sampleRegion(img, bounds, col, row*2+1, cols, rows*2)
			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			spans = append(spans, Span{Text: "▀", Style: style})
		}
		lines[row] = StyledLine{Spans: spans}
	}
	return lines, nil
}

// sampleRegion averages the source pixels covered by one output pixel.
func sampleRegion(img image.Image, bounds image.Rectangle, px, py, canvasW, canvasH int) colorful.Color {
	x0 := bounds.Min.X + px*bounds.Dx()/canvasW
	x1 := bounds.Min.X + (px+1)*bounds.Dx()/canvasW
	y0 := bounds.Min.Y + py*bounds.Dy()/canvasH
	y1 := bounds.Min.Y + (py+1)*bounds.Dy()/canvasH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, b float64
	count := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			lr, lg, lb := c.LinearRgb()
			r += lr
			g += lg
			b += lb
			count++
		}
	}
	if count == 0 {
		return colorful.Color{}
	}
	return colorful.LinearRgb(r/float64(count), g/float64(count), b/float64(count)).Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
