// Package xform builds and takes apart placement transforms, and converts
// placements between the source and target coordinate conventions.
//
// A placement is a position, a rotation given as Euler angles in degrees and
// a per-axis scale. It composes to the matrix
//
//	T(position) · Rz · Ry · Rx · S(scale)
//
// so a point is scaled, then rotated about X, then Y, then Z, then
// translated. Decompose inverts Compose; Euler angles are not unique, so the
// rotation it returns may differ from the one composed while describing the
// same matrix.
//
// The source scene is right-handed and the target engine left-handed: Z is
// negated on positions, and yaw (the Y angle) is offset by 180 degrees. The
// offset is additive and the result is not wrapped into [0, 360).
package xform
