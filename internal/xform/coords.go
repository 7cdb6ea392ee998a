package xform

// YawOffset is added to the Y rotation when converting to the target engine.
const YawOffset = 180.0

// ToLeftHanded negates the Z component. It is its own inverse.
func ToLeftHanded(v [3]float64) [3]float64 {
	return [3]float64{v[0], v[1], negate(v[2])}
}

// ToTargetRotation offsets the Y angle (degrees) by YawOffset. X and Z pass
// through unchanged.
func ToTargetRotation(deg [3]float64) [3]float64 {
	return [3]float64{deg[0], deg[1] + YawOffset, deg[2]}
}

// negate flips the sign of f without producing negative zero.
func negate(f float64) float64 {
	if f == 0 {
		return 0
	}

	return -f
}
