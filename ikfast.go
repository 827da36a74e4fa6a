// Package ikfast exposes stable, fixed-signature entry points around generated
// analytical inverse and forward kinematics solvers. The solver itself is an injected
// capability; this package normalizes pose representations on the way in and flattens
// variable-length solution sets into caller-owned fixed-stride buffers on the way out.
package ikfast

import (
	"github.com/golang/geo/r3"

	"go.viam.com/ikfast/spatialmath"
)

// UnsupportedFreeParameters is returned by the inverse entry points when the solution
// set requires free parameters the call shape cannot express. It is distinct from a
// zero return, which means the pose is simply unreachable.
const UnsupportedFreeParameters = -1

// Solution is a single joint configuration satisfying an inverse kinematics query.
type Solution struct {
	// Joints has length equal to the solver's joint count. Revolute values are radians.
	Joints []float64

	// Free holds the values the solver assigned to free parameters, in the order
	// reported by the solver. Empty for fully determined solutions.
	Free []float64
}

// Solver is the contract a generated analytical kinematics solver satisfies.
// Implementations must be synchronous, deterministic for given inputs, and free of
// side effects; thread safety of concurrent calls is the implementation's concern.
type Solver interface {
	// ComputeIK returns every joint configuration that reaches the given end effector
	// pose, with eeRot in row major order. An empty result means the pose is
	// unreachable, not an error. Solution order is stable within a call but carries
	// no other meaning.
	ComputeIK(eeTrans r3.Vector, eeRot *spatialmath.RotationMatrix, free []float64) []Solution

	// ComputeFK returns the end effector pose for a fully specified joint vector.
	ComputeFK(joints []float64) (r3.Vector, *spatialmath.RotationMatrix)

	// NumJoints returns the joint count of the kinematic model.
	NumJoints() int

	// NumFreeParameters returns how many joints the solver treats as seed inputs
	// rather than unknowns.
	NumFreeParameters() int
}
