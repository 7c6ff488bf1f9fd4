// Package covers generates placeholder cover images for imported books.
// The reader frontend shows these on the shelf until the user assigns a
// real cover. Covers are deterministic: the background colour is derived
// from the book's content fingerprint, so the same book always gets the
// same cover.
package covers

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Final cover dimensions. The shelf grid renders 3:4 tiles.
const (
	Width  = 300
	Height = 400
)

// canvas dimensions before upscaling; text is drawn small and scaled up.
const (
	canvasWidth  = 150
	canvasHeight = 200
)

// Generate renders a placeholder cover for a book. The fingerprint seeds
// the background colour; title and author are drawn onto the lower half.
// Text outside the basic Latin repertoire renders as placeholder glyphs,
// which is acceptable for a stand-in cover.
func Generate(title, author, fingerprint string) image.Image {
	bg := backgroundColor(fingerprint)

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	drawer.Dot = fixed.P(10, canvasHeight-60)
	drawer.DrawString(truncateForCover(title, 18))
	drawer.Dot = fixed.P(10, canvasHeight-40)
	drawer.DrawString(truncateForCover(author, 18))

	// Upscale to the final size; the soft bilinear blur reads as a texture.
	out := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out
}

// WritePNG encodes img to path, creating the parent directory if needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("covers: failed to create %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("covers: failed to create %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("covers: failed to encode %q: %w", path, err)
	}
	return nil
}

// backgroundColor derives a muted colour from the fingerprint's leading
// bytes. Channels are compressed into 40..160 so white text stays legible.
func backgroundColor(fingerprint string) color.RGBA {
	seed := []byte(fingerprint)
	for len(seed) < 3 {
		seed = append(seed, 0x5f)
	}
	compress := func(b byte) uint8 { return uint8(40 + int(b)%121) }
	return color.RGBA{
		R: compress(seed[0]),
		G: compress(seed[1]),
		B: compress(seed[2]),
		A: 0xff,
	}
}

// truncateForCover limits text to what fits on one cover line.
func truncateForCover(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
