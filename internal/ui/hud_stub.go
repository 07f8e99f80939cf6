//go:build !ebiten

package ui

// Status mirrors the GUI build's readout payload.
type Status struct {
	Width   int
	Scale   float64
	Offset  int
	Hovered bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD in the headless build.
func NewHUD() *HUD { return &HUD{} }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Status) {}
