package core

// Matrix is an affine transform stored as three basis axes plus a translation.
// A camera-to-world matrix has Right, Up and Forward as its axes.
type Matrix struct {
	XAxis       Vec3
	YAxis       Vec3
	ZAxis       Vec3
	Translation Vec3
}

// IdentityMatrix returns the identity transform
func IdentityMatrix() Matrix {
	return Matrix{XAxis: UnitX, YAxis: UnitY, ZAxis: UnitZ}
}

// NewMatrix creates a matrix from its axes and translation
func NewMatrix(xAxis, yAxis, zAxis, translation Vec3) Matrix {
	return Matrix{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis, Translation: translation}
}

// TransformVector applies the rotation/scale part only
func (m Matrix) TransformVector(v Vec3) Vec3 {
	return m.XAxis.Multiply(v.X).
		Add(m.YAxis.Multiply(v.Y)).
		Add(m.ZAxis.Multiply(v.Z))
}

// TransformPoint applies the full transform including translation
func (m Matrix) TransformPoint(p Vec3) Vec3 {
	return m.TransformVector(p).Add(m.Translation)
}
