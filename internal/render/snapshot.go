package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"uncurl/internal/grid"
)

// WriteSnapshot writes the mapped image as a PNG in dir, scaled up by the
// given integer factor with nearest-neighbor sampling so cells stay crisp.
// The filename carries a timestamp; the path written is returned.
func WriteSnapshot(dir string, g *grid.Grid, factor int) (string, error) {
	if factor < 1 {
		factor = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, g.Width, g.Width))
	expandRGBA(src.Pix, g.Pix)

	out := src
	if factor > 1 {
		out = image.NewRGBA(image.Rect(0, 0, g.Width*factor, g.Width*factor))
		xdraw.NearestNeighbor.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("uncurl_%s.png", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return "", fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return path, nil
}
