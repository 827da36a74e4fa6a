// Package main runs forward or inverse kinematics against the fake UR5e solver.
package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/ikfast"
	"go.viam.com/ikfast/fake"
	"go.viam.com/ikfast/spatialmath"
)

func main() {
	jointsPtr := flag.String("joints", "", "comma separated joint angles in radians; prints the end effector pose")
	posePtr := flag.String("pose", "", "x,y,z,qw,qx,qy,qz; prints joint solutions reaching that pose")
	flag.Parse()
	logger := golog.NewDevelopmentLogger("solve")

	solver, err := fake.NewSolver(logger)
	if err != nil {
		logger.Fatal(err)
	}
	adapter := ikfast.NewAdapter(solver, logger)

	switch {
	case *jointsPtr != "":
		joints := parseFloats(*jointsPtr, logger)
		if len(joints) != solver.NumJoints() {
			logger.Fatalf("need %d joint angles, got %d", solver.NumJoints(), len(joints))
		}
		var trans [3]float64
		var rot [9]float64
		adapter.Forward(joints, &trans, &rot)
		logger.Infof("position: %.4f %.4f %.4f", trans[0], trans[1], trans[2])
		logger.Infof("rotation: %.4f %.4f %.4f | %.4f %.4f %.4f | %.4f %.4f %.4f",
			rot[0], rot[1], rot[2], rot[3], rot[4], rot[5], rot[6], rot[7], rot[8])
	case *posePtr != "":
		vals := parseFloats(*posePtr, logger)
		if len(vals) != 7 {
			logger.Fatalf("need 7 values for -pose, got %d", len(vals))
		}
		seedCandidates(solver)
		pose := spatialmath.NewPose(
			r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]},
			quat.Number{Real: vals[3], Imag: vals[4], Jmag: vals[5], Kmag: vals[6]},
		)
		solutions := adapter.Solutions(pose)
		if len(solutions) == 0 {
			logger.Info("no solutions found")
			return
		}
		for i, sol := range solutions {
			logger.Infof("solution %d: %.4f", i, sol)
		}
	default:
		flag.Usage()
	}
}

func parseFloats(s string, logger golog.Logger) []float64 {
	var vals []float64
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			logger.Fatal(err)
		}
		vals = append(vals, v)
	}
	return vals
}

// seedCandidates registers a coarse grid of joint configurations so inverse queries
// over poses produced by that grid have something to match.
func seedCandidates(solver *fake.Solver) {
	angles := []float64{-1.5707963267948966, 0, 1.5707963267948966}
	var joints [6]float64
	var recurse func(depth int)
	recurse = func(depth int) {
		if depth == len(joints) {
			solver.AddCandidate(joints[:])
			return
		}
		for _, a := range angles {
			joints[depth] = a
			recurse(depth + 1)
		}
	}
	recurse(0)
}
