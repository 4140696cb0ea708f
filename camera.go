package cadence

import "math"

// CameraTarget is the camera capability CameraEffects drives. Translate and
// Rotate are relative so that effects compose with whatever else moves the
// camera.
type CameraTarget interface {
	Translate(dx, dy float64)
	Rotate(delta float64)
}

// scrollAnim holds an active scroll-to tween for camera X and Y.
type scrollAnim struct {
	x, y scalarTween
}

// Camera controls the view onto the scene: position, zoom, rotation, and
// viewport. It implements CameraTarget.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followTarget  Target
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scroll *scrollAnim
}

// NewCamera creates a camera centred on the viewport with zoom 1.
func NewCamera(viewport Rect) *Camera {
	cx, cy := viewport.Center()
	return &Camera{
		X:        cx,
		Y:        cy,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Translate moves the camera by (dx, dy) world units.
func (c *Camera) Translate(dx, dy float64) {
	c.X += dx
	c.Y += dy
	c.dirty = true
}

// Rotate turns the camera by delta radians.
func (c *Camera) Rotate(delta float64) {
	c.Rotation += delta
	c.dirty = true
}

// Follow makes the camera track a target with the given offset and lerp
// factor. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *Camera) Follow(target Target, offsetX, offsetY, lerpFactor float64) {
	mustTarget(target, "Camera.Follow")
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerpFactor
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A new call replaces any scroll in progress.
func (c *Camera) ScrollTo(x, y, duration float64, curve Curve) {
	c.scroll = &scrollAnim{
		x: newScalarTween(c.X, x, duration, curve),
		y: newScalarTween(c.Y, y, duration, curve),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// update advances follow and scroll. Called from Director.Update.
func (c *Camera) update(dt float64) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	if c.followTarget != nil {
		tx, ty := c.followTarget.Position()
		c.X += (tx + c.followOffsetX - c.X) * c.followLerp
		c.Y += (ty + c.followOffsetY - c.Y) * c.followLerp
	}

	if c.scroll != nil {
		x, doneX := c.scroll.x.update(dt)
		y, doneY := c.scroll.y.update(dt)
		c.X, c.Y = x, y
		if doneX && doneY {
			c.scroll = nil
		}
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// ViewMatrix returns the world-to-screen affine matrix [a, b, c, d, tx, ty]:
// translate by -(X, Y), rotate by -Rotation, scale by Zoom, then move to the
// viewport center.
func (c *Camera) ViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx, cy := c.Viewport.Center()
	sin, cos := math.Sincos(-c.Rotation)
	zc, zs := c.Zoom*cos, c.Zoom*sin

	c.viewMatrix = [6]float64{
		zc, zs,
		-zs, zc,
		cx - zc*c.X + zs*c.Y,
		cy - zs*c.X - zc*c.Y,
	}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	m := c.ViewMatrix()
	return transformPoint(m, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.ViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
