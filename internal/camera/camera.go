// Package camera holds the fixed perspective view the cloud is rendered
// through, shared by the window and terminal renderers.
package camera

import "github.com/go-gl/mathgl/mgl32"

const (
	FovY     = 75
	Near     = 0.1
	Far      = 1000
	Distance = 50
)

// Camera looks down -Z at the origin from Distance away.
type Camera struct {
	Width  int
	Height int
	// PixelAspect is the width-to-height ratio of one pixel. Terminal cells
	// are roughly twice as tall as wide, so they use 0.5.
	PixelAspect float32
}

// New returns a camera for a viewport of square pixels.
func New(width, height int) Camera {
	return Camera{Width: width, Height: height, PixelAspect: 1}
}

func (c Camera) aspect() float32 {
	if c.Height <= 0 || c.Width <= 0 {
		return 1
	}
	pa := c.PixelAspect
	if pa <= 0 {
		pa = 1
	}
	return float32(c.Width) * pa / float32(c.Height)
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FovY), c.aspect(), Near, Far)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{0, 0, Distance}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// ModelView spins the cloud by rotation radians about Y.
func (c Camera) ModelView(rotation float32) mgl32.Mat4 {
	return c.View().Mul4(mgl32.HomogRotate3DY(rotation))
}

// MVP is the full transform uploaded to the point shader.
func (c Camera) MVP(rotation float32) mgl32.Mat4 {
	return c.Projection().Mul4(c.ModelView(rotation))
}

// Project maps a world point through mvp to viewport coordinates with the
// origin top-left. depth is the NDC z in [-1, 1]. ok is false for points
// behind the eye or outside the viewport.
func (c Camera) Project(mvp mgl32.Mat4, p mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) * 0.5 * float32(c.Width)
	y = (1 - ndc.Y()) * 0.5 * float32(c.Height)
	return x, y, ndc.Z(), true
}
