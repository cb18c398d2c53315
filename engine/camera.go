package engine

import (
	"math"
	"time"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/vmath"
	"github.com/gmuffiness/agentfloor/world"
)

// cameraAnim is an in-flight ease toward a target position/zoom
type cameraAnim struct {
	fromX, fromY, fromZoom float64
	toX, toY, toZoom       float64
	elapsed                float64
	duration               float64
}

// Camera owns the viewport: world-space center, zoom factor, and the
// world-to-screen mapping used by every renderer and by the minimap
type Camera struct {
	X, Y float64 // world-space center
	Zoom float64

	// Viewport dimensions in terminal cells
	ViewW, ViewH int
	// Viewport origin on the terminal
	OriginX, OriginY int

	anim *cameraAnim
}

// NewCamera creates a camera centered on the given world point at zoom 1
func NewCamera(x, y float64) *Camera {
	return &Camera{X: x, Y: y, Zoom: 1.0}
}

// SetViewport records the drawable screen region
func (c *Camera) SetViewport(originX, originY, w, h int) {
	c.OriginX = originX
	c.OriginY = originY
	c.ViewW = w
	c.ViewH = h
}

// CenterOn snaps the camera to a world point with zero lag
func (c *Camera) CenterOn(x, y float64) {
	c.X = x
	c.Y = y
}

// ZoomBy applies a multiplicative zoom step, clamped to the allowed range
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = vmath.Clamp(c.Zoom*factor, constant.ZoomMin, constant.ZoomMax)
}

// AnimateTo begins an ease toward the target. zoom <= 0 keeps the current
// zoom. A new call replaces any in-flight animation.
func (c *Camera) AnimateTo(x, y, zoom float64, d time.Duration) {
	if zoom <= 0 {
		zoom = c.Zoom
	}
	zoom = vmath.Clamp(zoom, constant.ZoomMin, constant.ZoomMax)
	if d <= 0 {
		c.X, c.Y, c.Zoom = x, y, zoom
		c.anim = nil
		return
	}
	c.anim = &cameraAnim{
		fromX: c.X, fromY: c.Y, fromZoom: c.Zoom,
		toX: x, toY: y, toZoom: zoom,
		duration: d.Seconds(),
	}
}

// Animating reports whether an ease is in flight
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// CancelAnimation drops any in-flight ease, leaving the camera where it is
func (c *Camera) CancelAnimation() {
	c.anim = nil
}

// StepAnimation advances the in-flight ease by dt seconds
func (c *Camera) StepAnimation(dt float64) {
	a := c.anim
	if a == nil {
		return
	}
	a.elapsed += dt
	t := vmath.EaseInOutSine(a.elapsed / a.duration)
	c.X = vmath.Lerp(a.fromX, a.toX, t)
	c.Y = vmath.Lerp(a.fromY, a.toY, t)
	c.Zoom = vmath.Lerp(a.fromZoom, a.toZoom, t)
	if a.elapsed >= a.duration {
		c.X, c.Y, c.Zoom = a.toX, a.toY, a.toZoom
		c.anim = nil
	}
}

// WorldToScreen maps a world point to a terminal cell
func (c *Camera) WorldToScreen(wx, wy float64) (int, int) {
	sx := (wx-c.X)*c.Zoom/constant.PxPerCellX + float64(c.ViewW)/2
	sy := (wy-c.Y)*c.Zoom/constant.PxPerCellY + float64(c.ViewH)/2
	return c.OriginX + int(math.Floor(sx)), c.OriginY + int(math.Floor(sy))
}

// ScreenToWorld maps a terminal cell (its center) back to world space
func (c *Camera) ScreenToWorld(cx, cy int) (float64, float64) {
	sx := float64(cx-c.OriginX) + 0.5 - float64(c.ViewW)/2
	sy := float64(cy-c.OriginY) + 0.5 - float64(c.ViewH)/2
	return c.X + sx*constant.PxPerCellX/c.Zoom, c.Y + sy*constant.PxPerCellY/c.Zoom
}

// VisibleRect returns the world-space rectangle currently on screen,
// polled by the minimap every frame
func (c *Camera) VisibleRect() world.Rect {
	w := float64(c.ViewW) * constant.PxPerCellX / c.Zoom
	h := float64(c.ViewH) * constant.PxPerCellY / c.Zoom
	return world.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// FitZoom returns the zoom that fits the whole world into the viewport
func (c *Camera) FitZoom(bounds world.Rect) float64 {
	if bounds.W <= 0 || bounds.H <= 0 || c.ViewW <= 0 || c.ViewH <= 0 {
		return 1.0
	}
	zx := float64(c.ViewW) * constant.PxPerCellX / bounds.W
	zy := float64(c.ViewH) * constant.PxPerCellY / bounds.H
	return vmath.Clamp(math.Min(zx, zy), constant.ZoomMin, constant.ZoomMax)
}
