package xform

import (
	"cogentcore.org/core/math32"
)

// gimbalEpsilon is the cosine of the Y angle below which X and Z rotate
// about the same axis and Z is pinned to zero.
const gimbalEpsilon = 1e-4

// degenerateScale is the column length below which a basis axis is treated
// as collapsed.
const degenerateScale = 1e-6

var (
	axisX = math32.Vec3(1, 0, 0)
	axisY = math32.Vec3(0, 1, 0)
	axisZ = math32.Vec3(0, 0, 1)
)

// Vec converts a float64 triple to a math32 vector.
func Vec(v [3]float64) math32.Vector3 {
	return math32.Vec3(float32(v[0]), float32(v[1]), float32(v[2]))
}

// Rotation returns the rotation Rz · Ry · Rx for Euler angles in degrees.
func Rotation(deg math32.Vector3) math32.Quat {
	qx := math32.NewQuatAxisAngle(axisX, math32.DegToRad(deg.X))
	qy := math32.NewQuatAxisAngle(axisY, math32.DegToRad(deg.Y))
	qz := math32.NewQuatAxisAngle(axisZ, math32.DegToRad(deg.Z))

	q := qz.Mul(qy)

	return q.Mul(qx)
}

// Compose returns T(position) · Rz · Ry · Rx · S(scale) with rotation in degrees.
func Compose(scale, rotationDeg, position math32.Vector3) math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(position, Rotation(rotationDeg), scale)

	return m
}

// Decompose splits an affine matrix built by Compose back into scale,
// rotation in degrees and position. A mirrored basis is reported as a
// negative X scale. Columns collapsed by a zero scale are rebuilt from the
// remaining ones, so the rotation recomposes to m; only when every scale is
// zero is it returned as zero.
func Decompose(m *math32.Matrix4) (scale, rotationDeg, position math32.Vector3) {
	position = math32.Vec3(m[12], m[13], m[14])

	cols := [3]math32.Vector3{
		math32.Vec3(m[0], m[1], m[2]),
		math32.Vec3(m[4], m[5], m[6]),
		math32.Vec3(m[8], m[9], m[10]),
	}

	scale = math32.Vec3(cols[0].Length(), cols[1].Length(), cols[2].Length())
	if cols[0].Dot(cols[1].Cross(cols[2])) < 0 {
		scale.X = -scale.X
	}

	basis, ok := rotationBasis(cols, [3]float32{scale.X, scale.Y, scale.Z})
	if !ok {
		return scale, math32.Vector3{}, position
	}

	var rot math32.Matrix4
	for i, c := range basis {
		rot[4*i], rot[4*i+1], rot[4*i+2] = c.X, c.Y, c.Z
	}

	rot[15] = 1

	var q math32.Quat
	q.SetFromRotationMatrix(&rot)

	return scale, EulerAngles(q), position
}

// rotationBasis divides each column by its scale and completes the columns
// whose scale is (near) zero into a right-handed orthonormal basis. It
// reports false when no column survives.
func rotationBasis(cols [3]math32.Vector3, scale [3]float32) ([3]math32.Vector3, bool) {
	var (
		basis [3]math32.Vector3
		live  []int
	)

	for i, c := range cols {
		if math32.Abs(scale[i]) < degenerateScale {
			continue
		}

		basis[i] = c.MulScalar(1 / scale[i])
		live = append(live, i)
	}

	switch len(live) {
	case 3:
	case 2:
		// Columns are cyclic: x = y × z, y = z × x, z = x × y.
		k := 3 - live[0] - live[1]
		basis[k] = basis[(k+1)%3].Cross(basis[(k+2)%3])
	case 1:
		i := live[0]
		j, k := (i+1)%3, (i+2)%3
		basis[j] = perpendicular(basis[i])
		basis[k] = basis[i].Cross(basis[j])
	default:
		return basis, false
	}

	return basis, true
}

// perpendicular returns a unit vector orthogonal to the unit vector u.
func perpendicular(u math32.Vector3) math32.Vector3 {
	helper := axisX
	if ax, ay, az := math32.Abs(u.X), math32.Abs(u.Y), math32.Abs(u.Z); ay < ax && ay <= az {
		helper = axisY
	} else if az < ax && az < ay {
		helper = axisZ
	}

	p := u.Cross(helper)

	return p.MulScalar(1 / p.Length())
}

// EulerAngles returns the angles in degrees, for the Rz · Ry · Rx order, of
// the rotation described by the unit quaternion q. Y lies in [-90, 90] and
// X and Z in (-180, 180]. At Y = ±90 Z is pinned to zero.
func EulerAngles(q math32.Quat) math32.Vector3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	r00 := 1 - 2*(y*y+z*z)
	r10 := 2 * (x*y + w*z)
	r20 := 2 * (x*z - w*y)

	cosY := math32.Sqrt(r00*r00 + r10*r10)
	ry := math32.Atan2(-r20, cosY)

	var rx, rz float32

	if cosY < gimbalEpsilon {
		r01 := 2 * (x*y - w*z)
		r11 := 1 - 2*(x*x+z*z)
		sign := math32.Copysign(1, -r20)
		rx = math32.Atan2(sign*r01, r11)
	} else {
		r21 := 2 * (y*z + w*x)
		r22 := 1 - 2*(x*x+y*y)
		rx = math32.Atan2(r21, r22)
		rz = math32.Atan2(r10, r00)
	}

	return math32.Vec3(math32.RadToDeg(rx), math32.RadToDeg(ry), math32.RadToDeg(rz))
}

// EqualTol reports whether a and b agree entry by entry within tol, relative
// to the entry magnitude once it exceeds one.
func EqualTol(a, b *math32.Matrix4, tol float32) bool {
	for i := range a {
		d := math32.Abs(a[i] - b[i])
		mag := math32.Max(1, math32.Max(math32.Abs(a[i]), math32.Abs(b[i])))

		if d > tol*mag {
			return false
		}
	}

	return true
}

// RoundTrip composes a placement, decomposes the result and composes it
// again. It returns the decomposed placement and whether both matrices agree
// within tol.
func RoundTrip(scale, rotationDeg, position math32.Vector3, tol float32) (Placement, bool) {
	m := Compose(scale, rotationDeg, position)
	s, r, p := Decompose(&m)
	back := Compose(s, r, p)

	return Placement{Scale: s, Rotation: r, Position: p}, EqualTol(&m, &back, tol)
}

// Placement is a decomposed transform. Rotation is in degrees.
type Placement struct {
	Scale    math32.Vector3
	Rotation math32.Vector3
	Position math32.Vector3
}
