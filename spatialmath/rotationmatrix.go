package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/ikfast/utils"
)

// RotationMatrix is a 3x3 matrix in row major order.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates the rotation matrix from a slice of floats.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	return &RotationMatrix{[9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}}, nil
}

// NewRotationMatrixFromArray creates the rotation matrix from a fixed row major array.
func NewRotationMatrixFromArray(m [9]float64) *RotationMatrix {
	return &RotationMatrix{m}
}

// At returns the float corresponding to the element at the specified row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector corresponding to the matrix row of the specified index.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a vector corresponding to the matrix column of the specified index.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[col+3], Z: rm.mat[col+6]}
}

// RowMajor returns a copy of the matrix elements in row major order.
func (rm *RotationMatrix) RowMajor() [9]float64 {
	return rm.mat
}

// Mul returns the product of the rotation matrix with an r3 vector.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[1]*v.Y + rm.mat[2]*v.Z,
		Y: rm.mat[3]*v.X + rm.mat[4]*v.Y + rm.mat[5]*v.Z,
		Z: rm.mat[6]*v.X + rm.mat[7]*v.Y + rm.mat[8]*v.Z,
	}
}

// Quaternion converts the rotation matrix back to a unit quaternion using Shepperd's
// method, branching on the largest diagonal term for numerical stability.
func (rm *RotationMatrix) Quaternion() quat.Number {
	m := rm.mat
	var w, x, y, z float64
	tr := m[0] + m[4] + m[8]
	switch {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1.0)
		w = 0.25 / s
		x = (m[7] - m[5]) * s
		y = (m[2] - m[6]) * s
		z = (m[3] - m[1]) * s
	case m[0] > m[4] && m[0] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[0]-m[4]-m[8])
		w = (m[7] - m[5]) / s
		x = 0.25 * s
		y = (m[1] + m[3]) / s
		z = (m[2] + m[6]) / s
	case m[4] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[4]-m[0]-m[8])
		w = (m[2] - m[6]) / s
		x = (m[1] + m[3]) / s
		y = 0.25 * s
		z = (m[5] + m[7]) / s
	default:
		s := 2.0 * math.Sqrt(1.0+m[8]-m[0]-m[4])
		w = (m[3] - m[1]) / s
		x = (m[2] + m[6]) / s
		y = (m[5] + m[7]) / s
		z = 0.25 * s
	}
	return Normalize(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})
}

// Orthonormal returns whether the matrix is a proper rotation: transpose times self is
// the identity within tolerance and the determinant is +1.
func (rm *RotationMatrix) Orthonormal(tol float64) bool {
	m := mat.NewDense(3, 3, append([]float64(nil), rm.mat[:]...))
	var prod mat.Dense
	prod.Mul(m.T(), m)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 1.0
			}
			if !utils.Float64AlmostEqual(prod.At(r, c), want, tol) {
				return false
			}
		}
	}
	return utils.Float64AlmostEqual(mat.Det(m), 1, tol)
}
