// Package export writes atlas snapshots as PNG images.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"slimeatlas/internal/atlas"
	"slimeatlas/internal/geom"
	"slimeatlas/internal/logging"
)

var ErrEmptySurface = errors.New("export: empty surface")

// Request describes one snapshot.
type Request struct {
	Center  geom.Point
	Scale   float64
	Size    geom.Size
	Marked  atlas.Predicate
	Caption string
}

// canvas adapts a gg context to atlas.Surface.
type canvas struct {
	dc  *gg.Context
	err error
}

// NewSurface returns a software raster surface of the given size.
func NewSurface(size geom.Size) (atlas.Surface, error) {
	if size.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySurface, size.W, size.H)
	}
	return &canvas{dc: gg.NewContext(size.W, size.H)}, nil
}

func (c *canvas) Size() geom.Size {
	return geom.Size{W: c.dc.Width(), H: c.dc.Height()}
}

func (c *canvas) Clear() { c.dc.Clear() }

func (c *canvas) StrokeRect(x, y, w, h float64, ink atlas.Ink) {
	c.paint(ink)
	c.dc.DrawRectangle(x, y, w, h)
	c.keep(c.dc.Stroke())
}

func (c *canvas) FillRect(x, y, w, h float64, ink atlas.Ink) {
	c.paint(ink)
	c.dc.DrawRectangle(x, y, w, h)
	c.keep(c.dc.Fill())
}

func (c *canvas) StrokeArc(x, y, r, a0, a1 float64, ink atlas.Ink) {
	c.paint(ink)
	c.dc.MoveTo(x+r*math.Cos(a0), y+r*math.Sin(a0))
	c.dc.DrawArc(x, y, r, a0, a1)
	c.keep(c.dc.Stroke())
}

// paint selects the color and line width for ink.
func (c *canvas) paint(ink atlas.Ink) {
	switch ink {
	case atlas.InkGrid:
		c.dc.SetRGBA(0, 0, 0, 0.8)
		c.dc.SetLineWidth(1)
	case atlas.InkMarked:
		c.dc.SetRGBA(127.0/255, 1, 0, 0.4)
	case atlas.InkMarker:
		c.dc.SetRGBA(1, 0, 0, 0.4)
		c.dc.SetLineWidth(3)
	}
}

func (c *canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *canvas) image() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// Render draws req and returns the image with its caption stamped in the
// bottom-left corner.
func Render(req Request) (*image.RGBA, atlas.Frame, error) {
	surf, err := NewSurface(req.Size)
	if err != nil {
		return nil, atlas.Frame{}, err
	}
	c := surf.(*canvas)
	defer c.dc.Close()

	f := atlas.Render(req.Center, req.Scale, c, req.Marked)
	c.keep(c.dc.FlushGPU())
	if c.err != nil {
		return nil, f, fmt.Errorf("export: draw: %w", c.err)
	}
	img := c.image()
	if req.Caption != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{A: 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, img.Bounds().Dy()-4),
		}
		d.DrawString(req.Caption)
	}
	return img, f, nil
}

// Write encodes the snapshot as PNG to w.
func Write(w io.Writer, req Request) (atlas.Frame, error) {
	img, f, err := Render(req)
	if err != nil {
		return f, err
	}
	if err := png.Encode(w, img); err != nil {
		return f, fmt.Errorf("export: encode: %w", err)
	}
	return f, nil
}

// Save writes the snapshot to path.
func Save(path string, req Request) (atlas.Frame, error) {
	out, err := os.Create(path)
	if err != nil {
		return atlas.Frame{}, fmt.Errorf("export: create %s: %w", path, err)
	}
	f, err := Write(out, req)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("export: close %s: %w", path, cerr)
	}
	if err != nil {
		os.Remove(path)
		return f, err
	}
	logging.Logger().Info("export: snapshot saved", "path", path,
		"chunks", len(f.Visible), "marked", len(f.Marked))
	return f, nil
}

// FileName names a snapshot after its center and scale.
func FileName(dir string, center geom.Point, scale float64) string {
	return filepath.Join(dir, fmt.Sprintf("atlas_%d_%d_x%g.png", int(center.X), int(center.Z), scale))
}
