package cubeview

import "github.com/go-gl/mathgl/mgl32"

// Camera holds the fixed view and projection parameters.
type Camera struct {
	Distance   float32 `toml:"distance" yaml:"distance"`       // Eye distance from the origin along -Z
	FOVDegrees float32 `toml:"fov_degrees" yaml:"fov_degrees"` // Vertical field of view
	Near       float32 `toml:"near" yaml:"near"`
	Far        float32 `toml:"far" yaml:"far"`
}

// DefaultCamera returns the camera 8 units from the cube with a 45° lens.
func DefaultCamera() Camera {
	return Camera{
		Distance:   8,
		FOVDegrees: 45,
		Near:       0.1,
		Far:        1000,
	}
}

// View returns the look-at matrix from (0, 0, -Distance) toward the origin
// with +Y up.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{0, 0, -c.Distance},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

// Projection returns the perspective matrix for a surface of the given size.
// A non-positive height (minimized window) falls back to a square aspect.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOVDegrees), aspect, c.Near, c.Far)
}

// XRotation is the rotation driven by the horizontal drag angle.
// It spins the cube about the vertical axis.
func XRotation(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(angle)
}

// YRotation is the rotation driven by the vertical drag angle.
// It tilts the cube about the horizontal axis.
func YRotation(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(angle)
}

// WorldMatrix returns XRotation(a.X) * YRotation(a.Y).
func WorldMatrix(a AngleState) mgl32.Mat4 {
	return XRotation(a.X).Mul4(YRotation(a.Y))
}
