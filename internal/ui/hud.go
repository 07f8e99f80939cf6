//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status describes one frame's readout: the grid size, the current zoom,
// and the 1D record offset under the cursor when there is one.
type Status struct {
	Width   int
	Scale   float64
	Offset  int
	Hovered bool
}

// HUD draws a one-line status readout in the window corner. Tab toggles it.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
}

// Draw renders the status line onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if !h.visible {
		return
	}
	line := fmt.Sprintf("%dx%d  zoom %.2f", s.Width, s.Width, s.Scale)
	if s.Hovered {
		line += fmt.Sprintf("  offset %d", s.Offset)
	}
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.White)
}
