package ikfast

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/ikfast/spatialmath"
)

// InverseMany runs inverse kinematics for each pose in parallel and returns the
// solution sets in input order. Each individual solve is a synchronous leaf; the
// context is consulted once per pose before its solve runs, so cancellation stops
// remaining work but never interrupts a solve in flight.
func (a *Adapter) InverseMany(ctx context.Context, poses []spatialmath.Pose) ([][][]float64, error) {
	results := make([][][]float64, len(poses))

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errs error
	for i, pose := range poses {
		idx, p := i, pose
		wg.Add(1)
		goutils.PanicCapturingGo(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errMu.Lock()
				defer errMu.Unlock()
				errs = multierr.Combine(errs, err)
				return
			}
			// each goroutine owns a distinct index
			results[idx] = a.Solutions(p)
		})
	}
	wg.Wait()

	if errs != nil {
		return nil, errs
	}
	return results, nil
}
