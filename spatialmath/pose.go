package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a 6dof pose: a point in 3D space and an orientation quaternion.
type Pose struct {
	Point       r3.Vector
	Orientation quat.Number
}

// NewZeroPose returns a pose at the origin with no rotation.
func NewZeroPose() Pose {
	return Pose{Orientation: quat.Number{Real: 1}}
}

// NewPose creates a pose from a point and an orientation quaternion, normalizing the
// quaternion on the way in.
func NewPose(pt r3.Vector, o quat.Number) Pose {
	return Pose{Point: pt, Orientation: Normalize(o)}
}

// NewPoseFromRotationMatrix creates a pose from a point and a rotation matrix.
func NewPoseFromRotationMatrix(pt r3.Vector, rm *RotationMatrix) Pose {
	return Pose{Point: pt, Orientation: rm.Quaternion()}
}

// RotationMatrix returns the pose orientation in rotation matrix representation.
func (p Pose) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(p.Orientation)
}

// PoseAlmostEqual returns whether two poses are within tolerance of one another, in
// both translation distance and orientation.
func PoseAlmostEqual(a, b Pose, tol float64) bool {
	return a.Point.Sub(b.Point).Norm() < tol && QuaternionAlmostEqual(a.Orientation, b.Orientation, tol)
}
