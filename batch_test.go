package ikfast_test

import (
	"context"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/ikfast/spatialmath"
)

func TestInverseMany(t *testing.T) {
	adapter, solver := newAdapter(t)

	first := []float64{0, 0, 0, 0, 0, 0}
	second := []float64{0.5, -0.5, 0.5, -0.5, 0.5, -0.5}
	solver.AddCandidate(first)
	solver.AddCandidate(second)

	poseOf := func(joints []float64) spatialmath.Pose {
		trans, rm := solver.ComputeFK(joints)
		return spatialmath.NewPoseFromRotationMatrix(trans, rm)
	}
	unreachable := spatialmath.NewZeroPose()

	results, err := adapter.InverseMany(
		context.Background(),
		[]spatialmath.Pose{poseOf(first), poseOf(second), unreachable},
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, results, test.ShouldHaveLength, 3)
	test.That(t, results[0], test.ShouldHaveLength, 1)
	test.That(t, floats.EqualApprox(results[0][0], first, 1e-6), test.ShouldBeTrue)
	test.That(t, results[1], test.ShouldHaveLength, 1)
	test.That(t, floats.EqualApprox(results[1][0], second, 1e-6), test.ShouldBeTrue)
	test.That(t, results[2], test.ShouldHaveLength, 0)
}

func TestInverseManyCancelled(t *testing.T) {
	adapter, solver := newAdapter(t)
	solver.AddCandidate([]float64{0, 0, 0, 0, 0, 0})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := adapter.InverseMany(ctx, []spatialmath.Pose{spatialmath.NewZeroPose()})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, results, test.ShouldBeNil)
}
