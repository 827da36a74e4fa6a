// Package fake implements a scripted analytical solver, so the flat-buffer adapter
// can be exercised without linking generated solver code.
package fake

import (
	"sync"

	// used to import the DH model.
	_ "embed"
	"encoding/json"
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/ikfast"
	"go.viam.com/ikfast/spatialmath"
)

//go:embed ur5e_dh.json
var ur5eDHJSON []byte

// candidate joint vectors matching a pose this closely are returned as IK solutions.
const defaultPoseTolerance = 1e-4

type dhParam struct {
	A     float64 `json:"a"`
	D     float64 `json:"d"`
	Alpha float64 `json:"alpha"`
}

type dhModel struct {
	Name   string    `json:"name"`
	Joints []dhParam `json:"joints"`
}

// Solver is a six joint solver backed by DH parameter forward kinematics. Inverse
// queries are answered from a table of registered candidate joint vectors, or from a
// scripted solution set when one has been queued.
type Solver struct {
	logger     golog.Logger
	model      dhModel
	freeParams int

	mu         sync.Mutex
	candidates [][]float64
	scripted   []ikfast.Solution
	hasScript  bool
}

// NewSolver returns a solver for a UR5e-like arm loaded from the embedded DH model.
func NewSolver(logger golog.Logger) (*Solver, error) {
	var model dhModel
	if err := json.Unmarshal(ur5eDHJSON, &model); err != nil {
		return nil, errors.Wrap(err, "cannot parse embedded DH model")
	}
	if len(model.Joints) != 6 {
		return nil, errors.Errorf("DH model %q has %d joints, need 6", model.Name, len(model.Joints))
	}
	return &Solver{logger: logger, model: model}, nil
}

// NewFreeParameterSolver returns a solver that reports nFree free parameters, for
// exercising callers that cannot express them.
func NewFreeParameterSolver(logger golog.Logger, nFree int) (*Solver, error) {
	s, err := NewSolver(logger)
	if err != nil {
		return nil, err
	}
	s.freeParams = nFree
	return s, nil
}

// AddCandidate registers a joint vector whose forward pose ComputeIK will match
// inverse queries against. Duplicates are ignored.
func (s *Solver) AddCandidate(joints []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.candidates {
		if floats.EqualApprox(existing, joints, 1e-9) {
			return
		}
	}
	s.candidates = append(s.candidates, append([]float64(nil), joints...))
}

// Script queues a solution set that the next ComputeIK call returns verbatim,
// bypassing the candidate table. Scripting an empty set forces a no-solution result.
func (s *Solver) Script(solutions []ikfast.Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripted = solutions
	s.hasScript = true
}

// NumJoints returns the joint count of the DH model.
func (s *Solver) NumJoints() int {
	return len(s.model.Joints)
}

// NumFreeParameters returns how many joints the solver treats as free.
func (s *Solver) NumFreeParameters() int {
	return s.freeParams
}

// matrix builds the 4x4 homogeneous DH transform for this joint at the given angle.
func (p dhParam) matrix(theta float64) *mat.Dense {
	m := mat.NewDense(4, 4, nil)

	m.Set(0, 0, math.Cos(theta))
	m.Set(0, 1, -1*math.Sin(theta)*math.Cos(p.Alpha))
	m.Set(0, 2, math.Sin(theta)*math.Sin(p.Alpha))
	m.Set(0, 3, p.A*math.Cos(theta))

	m.Set(1, 0, math.Sin(theta))
	m.Set(1, 1, math.Cos(theta)*math.Cos(p.Alpha))
	m.Set(1, 2, -1*math.Cos(theta)*math.Sin(p.Alpha))
	m.Set(1, 3, p.A*math.Sin(theta))

	m.Set(2, 1, math.Sin(p.Alpha))
	m.Set(2, 2, math.Cos(p.Alpha))
	m.Set(2, 3, p.D)

	m.Set(3, 3, 1)

	return m
}

// ComputeFK chains the DH transform of each joint and returns the end effector
// translation and rotation.
func (s *Solver) ComputeFK(joints []float64) (r3.Vector, *spatialmath.RotationMatrix) {
	res := s.model.Joints[0].matrix(joints[0])
	for i, theta := range joints {
		if i == 0 {
			continue
		}
		temp := mat.NewDense(4, 4, nil)
		temp.Mul(res, s.model.Joints[i].matrix(theta))
		res = temp
	}

	trans := r3.Vector{X: res.At(0, 3), Y: res.At(1, 3), Z: res.At(2, 3)}
	var rot [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			rot[3*r+c] = res.At(r, c)
		}
	}
	return trans, spatialmath.NewRotationMatrixFromArray(rot)
}

// ComputeIK returns the queued scripted solutions if any, otherwise every registered
// candidate whose forward pose matches the query within tolerance.
func (s *Solver) ComputeIK(eeTrans r3.Vector, eeRot *spatialmath.RotationMatrix, free []float64) []ikfast.Solution {
	s.mu.Lock()
	scripted, hasScript := s.scripted, s.hasScript
	s.scripted, s.hasScript = nil, false
	candidates := s.candidates
	s.mu.Unlock()

	if hasScript {
		return scripted
	}

	goal := spatialmath.NewPoseFromRotationMatrix(eeTrans, eeRot)
	var solutions []ikfast.Solution
	for _, joints := range candidates {
		trans, rm := s.ComputeFK(joints)
		if spatialmath.PoseAlmostEqual(spatialmath.NewPoseFromRotationMatrix(trans, rm), goal, defaultPoseTolerance) {
			solutions = append(solutions, ikfast.Solution{Joints: append([]float64(nil), joints...)})
		}
	}
	if len(solutions) == 0 {
		s.logger.Debugf("no candidate joint vector reaches pose %v", eeTrans)
	}
	return solutions
}
