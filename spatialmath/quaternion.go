// Package spatialmath defines the quaternion, rotation matrix, and pose math used to
// normalize end effector poses before they are handed to a kinematics solver.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Below this norm a quaternion carries no usable orientation information.
const quatNormEpsilon = 1e-12

// Normalize scales a quaternion to unit length. A degenerate quaternion whose norm is
// below the epsilon threshold normalizes to the identity rotation rather than
// dividing by (nearly) zero.
func Normalize(q quat.Number) quat.Number {
	norm := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if norm < quatNormEpsilon {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/norm, q)
}

// QuatToRotationMatrix converts a quaternion to a row-major rotation matrix.
// The quaternion is renormalized first, and all intermediate products are computed
// in float64, so callers holding lower precision inputs should convert up before
// calling rather than converting the matrix after.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	q = Normalize(q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &RotationMatrix{[9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}}
}

// QuaternionAlmostEqual returns whether two quaternions represent the same rotation to
// within tolerance. Since q and -q encode the same rotation, both signs are checked.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quat.Abs(quat.Sub(a, b)) < tol || quat.Abs(quat.Add(a, b)) < tol
}
