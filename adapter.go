package ikfast

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/ikfast/spatialmath"
)

// Adapter wraps a Solver with the flat-buffer entry points legacy callers are built
// against. It holds no mutable state; a single Adapter may be shared across goroutines
// whenever the underlying Solver is itself safe for concurrent use.
type Adapter struct {
	solver Solver
	logger golog.Logger
}

// NewAdapter wraps the given solver.
func NewAdapter(solver Solver, logger golog.Logger) *Adapter {
	return &Adapter{solver: solver, logger: logger}
}

// Inverse runs inverse kinematics for a pose given as a translation and a row major
// rotation matrix, packing each solution's joint values contiguously into result.
// Solution i occupies result[i*n : (i+1)*n] where n is the solver joint count. At most
// len(result)/n solutions are written. The return value is the number of solutions
// packed, 0 when the pose is unreachable, or UnsupportedFreeParameters when the
// solution set requires free parameters.
func (a *Adapter) Inverse(eeTrans [3]float64, eeRot [9]float64, result []float64) int {
	rm := spatialmath.NewRotationMatrixFromArray(eeRot)
	solutions := a.solver.ComputeIK(r3.Vector{X: eeTrans[0], Y: eeTrans[1], Z: eeTrans[2]}, rm, nil)
	if len(solutions) == 0 {
		return 0
	}
	if len(solutions[0].Free) != 0 {
		return UnsupportedFreeParameters
	}
	return a.pack(solutions, result, len(result)/a.solver.NumJoints())
}

// InversePose runs inverse kinematics for a pose given as x,y,z translation followed
// by a w,x,y,z orientation quaternion, all single precision. The quaternion is
// renormalized and converted to a rotation matrix in double precision; directly
// converting in float32 loses accuracy relative to passing a rotation matrix to
// Inverse. A quaternion with near-zero norm carries no orientation and yields 0.
// At most maxSolutions solutions are written to solData, and never more than
// len(solData)/n. Joint values are narrowed to float32 at this boundary.
func (a *Adapter) InversePose(posQuat [7]float32, solData []float32, maxSolutions int) int {
	trans := r3.Vector{X: float64(posQuat[0]), Y: float64(posQuat[1]), Z: float64(posQuat[2])}
	q := quat.Number{
		Real: float64(posQuat[3]),
		Imag: float64(posQuat[4]),
		Jmag: float64(posQuat[5]),
		Kmag: float64(posQuat[6]),
	}
	if quat.Abs(q) < 1e-12 {
		return 0
	}

	solutions := a.solver.ComputeIK(trans, spatialmath.QuatToRotationMatrix(q), nil)
	if len(solutions) == 0 {
		return 0
	}
	if len(solutions[0].Free) != 0 {
		return UnsupportedFreeParameters
	}

	nJoints := a.solver.NumJoints()
	if bufMax := len(solData) / nJoints; maxSolutions > bufMax {
		maxSolutions = bufMax
	}
	count := 0
	for _, sol := range solutions {
		if count >= maxSolutions {
			a.logger.Debugf("dropping %d inverse kinematics solutions that do not fit the output buffer", len(solutions)-count)
			break
		}
		for j, v := range sol.Joints {
			solData[count*nJoints+j] = float32(v)
		}
		count++
	}
	return count
}

// Solutions runs inverse kinematics for a pose and returns the solution set as freshly
// allocated joint vectors, free values discarded. This is the growable counterpart to
// the flat entry points for callers that do not need a binary-stable layout.
func (a *Adapter) Solutions(pose spatialmath.Pose) [][]float64 {
	solutions := a.solver.ComputeIK(pose.Point, pose.RotationMatrix(), nil)
	out := make([][]float64, 0, len(solutions))
	for _, sol := range solutions {
		out = append(out, append([]float64(nil), sol.Joints...))
	}
	return out
}

// pack flattens solutions into result with solution i at offset i*jointCount,
// discarding free values, and returns the count written.
func (a *Adapter) pack(solutions []Solution, result []float64, maxSolutions int) int {
	nJoints := a.solver.NumJoints()
	count := 0
	for _, sol := range solutions {
		if count >= maxSolutions {
			a.logger.Debugf("dropping %d inverse kinematics solutions that do not fit the output buffer", len(solutions)-count)
			break
		}
		copy(result[count*nJoints:(count+1)*nJoints], sol.Joints)
		count++
	}
	return count
}

// Forward computes the end effector pose for the given joint vector, writing the
// translation and row major rotation matrix into the caller's buffers. The joint
// vector length must equal the solver joint count; otherwise nothing is written.
func (a *Adapter) Forward(joints []float64, eeTrans *[3]float64, eeRot *[9]float64) {
	if len(joints) != a.solver.NumJoints() {
		a.logger.Debugw("joint vector length mismatch", "got", len(joints), "want", a.solver.NumJoints())
		return
	}
	trans, rm := a.solver.ComputeFK(joints)
	eeTrans[0], eeTrans[1], eeTrans[2] = trans.X, trans.Y, trans.Z
	*eeRot = rm.RowMajor()
}

// Forward6 is the fixed-size, single precision specialization of Forward for six
// joint solvers. The solver computes in float64 throughout; results are narrowed to
// float32 only at this boundary.
func (a *Adapter) Forward6(angles [6]float32, pos *[3]float32, rot *[9]float32) {
	joints := make([]float64, len(angles))
	for i, v := range angles {
		joints[i] = float64(v)
	}
	trans, rm := a.solver.ComputeFK(joints)
	pos[0], pos[1], pos[2] = float32(trans.X), float32(trans.Y), float32(trans.Z)
	for i, v := range rm.RowMajor() {
		rot[i] = float32(v)
	}
}
