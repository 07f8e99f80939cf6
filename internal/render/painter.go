//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"uncurl/internal/grid"
	"uncurl/internal/view"
)

// ImagePainter owns the GPU copy of the mapped image. The pixel data never
// changes after construction; only the view transform does.
type ImagePainter struct {
	width int
	img   *ebiten.Image
}

// NewImagePainter uploads the grid's pixel data once.
func NewImagePainter(g *grid.Grid) *ImagePainter {
	buf := make([]byte, g.Cells()*4)
	expandRGBA(buf, g.Pix)
	img := ebiten.NewImage(g.Width, g.Width)
	img.WritePixels(buf)
	return &ImagePainter{width: g.Width, img: img}
}

// Blit draws the image centered on the window midpoint, offset by the pan
// and scaled by the zoom, matching view.View's screen-to-local mapping.
func (p *ImagePainter) Blit(dst *ebiten.Image, v *view.View) {
	b := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	half := float64(p.width) * 0.5
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(v.Scale, v.Scale)
	op.GeoM.Translate(float64(b.Dx())*0.5+v.PanX, float64(b.Dy())*0.5+v.PanY)
	dst.DrawImage(p.img, op)
}
