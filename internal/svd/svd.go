package svd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Mode selects which end of the singular spectrum a truncation keeps.
type Mode int

const (
	// Best keeps the rank largest singular values. By the
	// Eckart-Young-Mirsky theorem the result is the minimal
	// Frobenius-error approximation of that rank.
	Best Mode = iota
	// Worst keeps the rank smallest singular values, producing a
	// deliberately degraded reconstruction for comparison.
	Worst
)

func (m Mode) String() string {
	switch m {
	case Best:
		return "best"
	case Worst:
		return "worst"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var (
	ErrInvalidRank = errors.New("invalid rank")
	// ErrUnavailable reports that the decomposition primitive could not
	// factorize the matrix (workspace sizing or convergence failure).
	// Not retryable for the same dimensions.
	ErrUnavailable = errors.New("decomposition unavailable")
	// ErrSingularOrder reports singular values that are not in
	// descending order. Block selection assumes the ordering, so a
	// violation must fail loudly instead of truncating the wrong block.
	ErrSingularOrder = errors.New("singular values not in descending order")
)

// RankError reports a rank outside [1, min(m,n)].
type RankError struct {
	Requested, Max int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("rank must be between 1 and %d, got %d", e.Max, e.Requested)
}

func (e *RankError) Unwrap() error { return ErrInvalidRank }

// Decomposer computes a full singular value decomposition
// A = U * diag(s) * V^T with U (m x m), V (n x n) and s of length
// min(m,n) in descending order.
type Decomposer interface {
	Decompose(a mat.Matrix) (u, v *mat.Dense, s []float64, err error)
}

type gonumDecomposer struct{}

func (gonumDecomposer) Decompose(a mat.Matrix) (*mat.Dense, *mat.Dense, []float64, error) {
	var f mat.SVD
	if ok := f.Factorize(a, mat.SVDFull); !ok {
		return nil, nil, nil, ErrUnavailable
	}
	var u, v mat.Dense
	f.UTo(&u)
	f.VTo(&v)
	return &u, &v, f.Values(nil), nil
}

// Approximator reduces matrices to a target rank using an injected
// decomposition primitive.
type Approximator struct {
	dec Decomposer
}

// NewApproximator returns an Approximator backed by dec. A nil dec
// selects the gonum SVD.
func NewApproximator(dec Decomposer) *Approximator {
	if dec == nil {
		dec = gonumDecomposer{}
	}
	return &Approximator{dec: dec}
}

// Approximate is a convenience wrapper using the default decomposition.
func Approximate(a *mat.Dense, rank int, mode Mode) (*mat.Dense, error) {
	return NewApproximator(nil).Approximate(a, rank, mode)
}

// Approximate returns the rank-limited approximation of a.
//
// rank must satisfy 1 <= rank <= min(m,n). rank == min(m,n) returns a
// copy of the input without decomposing; a full-rank round trip through
// the factorization would only add numeric error.
func (ap *Approximator) Approximate(a *mat.Dense, rank int, mode Mode) (*mat.Dense, error) {
	m, n := a.Dims()
	k := min(m, n)
	if rank < 1 || rank > k {
		return nil, &RankError{Requested: rank, Max: k}
	}
	if rank == k {
		return mat.DenseCopyOf(a), nil
	}

	u, v, s, err := ap.dec.Decompose(a)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return nil, ErrSingularOrder
		}
	}

	// Contiguous block of the descending spectrum: leading for Best,
	// trailing for Worst.
	off := 0
	if mode == Worst {
		off = k - rank
	}
	sigma := mat.NewDense(rank, rank, nil)
	for i := 0; i < rank; i++ {
		sigma.Set(i, i, s[off+i])
	}
	uSub := u.Slice(0, m, off, off+rank)
	vSub := v.Slice(0, n, off, off+rank)

	var res mat.Dense
	res.Product(uSub, sigma, vSub.T())
	return &res, nil
}
