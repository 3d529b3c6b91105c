package math

// Vec3i is a 3D vector with integer components, used for grid positions.
type Vec3i struct {
	X, Y, Z int
}

// Add returns v + other.
func (v Vec3i) Add(other Vec3i) Vec3i {
	return Vec3i{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Vec3 converts to a float vector.
func (v Vec3i) Vec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Truncate converts a float vector to grid coordinates, truncating toward
// zero.
func Truncate(v Vec3) Vec3i {
	return Vec3i{int(v.X), int(v.Y), int(v.Z)}
}
