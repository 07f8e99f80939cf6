package view

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSensitivity is the multiplicative zoom step per wheel tick.
const DefaultSensitivity = 1.017

// resetAnim holds active tweens returning the view to its home state.
type resetAnim struct {
	panX, panY, scale *gween.Tween
	doneX, doneY      bool
	doneScale         bool
}

// View is the affine mapping between window pixel space and curve-local
// space. Local space has its origin at the window midpoint, so the mapped
// square (centered on the origin) sits centered in the window at pan (0,0),
// scale 1. One View belongs to one window/session; nothing here is global.
type View struct {
	// PanX and PanY are the accumulated screen-space offset.
	PanX, PanY float64
	// Scale is the cumulative zoom factor, always positive.
	Scale float64
	// Sensitivity is the zoom base raised to the wheel delta in ZoomAt.
	Sensitivity float64

	w, h  int
	reset *resetAnim
}

// New returns a View at the home state (no pan, scale 1) for a window of
// the given size.
func New(w, h int) *View {
	return &View{Scale: 1, Sensitivity: DefaultSensitivity, w: w, h: h}
}

// Resize updates the window dimensions the transform is relative to.
func (v *View) Resize(w, h int) {
	v.w, v.h = w, h
}

// ScreenToLocal converts a window position to curve-local coordinates.
func (v *View) ScreenToLocal(sx, sy float64) (lx, ly float64) {
	midX := float64(v.w) * 0.5
	midY := float64(v.h) * 0.5
	return (sx - midX - v.PanX) / v.Scale, (sy - midY - v.PanY) / v.Scale
}

// Pan shifts the view by raw screen-space deltas. Pan speed is independent
// of the zoom level on purpose: the content tracks the cursor 1:1.
func (v *View) Pan(dx, dy float64) {
	v.reset = nil
	v.PanX += dx
	v.PanY += dy
}

// ZoomAt multiplies the scale by Sensitivity^ticks and corrects the pan so
// the local point under the cursor stays under the cursor. Without the
// correction the content would slide toward the window center on every
// wheel tick.
func (v *View) ZoomAt(sx, sy float64, ticks float64) {
	v.reset = nil
	beforeX, beforeY := v.ScreenToLocal(sx, sy)
	v.Scale *= math.Pow(v.Sensitivity, ticks)
	afterX, afterY := v.ScreenToLocal(sx, sy)
	v.PanX += (afterX - beforeX) * v.Scale
	v.PanY += (afterY - beforeY) * v.Scale
}

// ResetTo animates pan and scale back to the home view over duration
// seconds. Any manual pan or zoom cancels the animation.
func (v *View) ResetTo(duration float32) {
	v.reset = &resetAnim{
		panX:  gween.New(float32(v.PanX), 0, duration, ease.OutQuad),
		panY:  gween.New(float32(v.PanY), 0, duration, ease.OutQuad),
		scale: gween.New(float32(v.Scale), 1, duration, ease.OutQuad),
	}
}

// Update advances an in-flight reset animation by dt seconds. No-op when
// nothing is animating.
func (v *View) Update(dt float32) {
	r := v.reset
	if r == nil {
		return
	}
	if !r.doneX {
		val, done := r.panX.Update(dt)
		v.PanX = float64(val)
		r.doneX = done
	}
	if !r.doneY {
		val, done := r.panY.Update(dt)
		v.PanY = float64(val)
		r.doneY = done
	}
	if !r.doneScale {
		val, done := r.scale.Update(dt)
		v.Scale = float64(val)
		r.doneScale = done
	}
	if r.doneX && r.doneY && r.doneScale {
		v.reset = nil
	}
}
