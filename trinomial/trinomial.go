// Package trinomial implements the exact one-sided trinomial sign test of
// Bian, McAleer & Wong for paired data with ties. Each paired observation is
// scored +1, 0 or -1; the test asks how surprising the observed imbalance
// between positive and negative signs is when both directions are equally
// likely and the tie probability is estimated from the data.
package trinomial

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/BenLubar/memoize"
)

var (
	// ErrInsufficientData indicates an empty outcome set.
	ErrInsufficientData = errors.New("trinomial: no paired outcomes")

	// ErrDomain indicates sign counts that cannot have come from a real
	// outcome set.
	ErrDomain = errors.New("trinomial: inconsistent sign counts")
)

var memoizedFactorial = memoize.Memoize(factorial)

// Test computes the significance probability of observing the sign counts
// (nPos, nTie, nNeg) under the trinomial null model. With n = nPos+nTie+nNeg,
// nd = |nPos-nNeg| and pTie = nTie/n, it evaluates
//
//	P(Nd) = sum_{k=0}^{(n-nd)/2} n! / ((nd+k)! k! (n-nd-2k)!) *
//	        ((1-pTie)/2)^(nd+2k) * pTie^(n-nd-2k)
//
// and returns P(Nd) when nPos >= nNeg, else 1 - P(Nd). The sum is evaluated
// in exact rational arithmetic and converted to float64 once at the end;
// factorials of n beyond ~20 overflow int64 and beyond ~170 overflow float64,
// so no floating-point factorial appears anywhere. A positive probability
// that underflows float64 is clamped to the smallest positive value, never
// rounded to zero.
func Test(nPos, nTie, nNeg int) (float64, error) {
	if nPos < 0 || nTie < 0 || nNeg < 0 {
		return 0, fmt.Errorf("%w: negative count in (%d, %d, %d)", ErrDomain, nPos, nTie, nNeg)
	}

	n := int64(nPos) + int64(nTie) + int64(nNeg)
	if n == 0 {
		return 0, ErrInsufficientData
	}

	nd := int64(nPos) - int64(nNeg)
	if nd < 0 {
		nd = -nd
	}

	// nPos+nNeg and |nPos-nNeg| always share parity; a violation means the
	// counts were not derived from a real outcome set.
	if (n-int64(nTie)-nd)%2 != 0 {
		return 0, fmt.Errorf("%w: parity violation in (%d, %d, %d)", ErrDomain, nPos, nTie, nNeg)
	}

	p, _ := tailSum(n, nd, int64(nTie)).Float64()

	if nPos < nNeg {
		p = 1 - p
	}

	// Underflow guard: the sum is a positive rational, so a zero here is a
	// float64 underflow, not a true zero probability.
	if p <= 0 {
		p = math.SmallestNonzeroFloat64
	}
	if p > 1 {
		p = 1
	}

	return p, nil
}

// tailSum evaluates the trinomial sum exactly. With pTie = nTie/n, the k-th
// term is
//
//	n!/((nd+k)! k! (n-nd-2k)!) * ((n-nTie)/(2n))^(nd+2k) * (nTie/n)^(n-nd-2k)
//
// kept as a big.Rat of integer products throughout.
func tailSum(n, nd, nTie int64) *big.Rat {
	fact := memoizedFactorial.(func(int64, int64) *big.Int)

	sum := new(big.Rat)
	for k := int64(0); 2*k <= n-nd; k++ {
		nTies := n - nd - 2*k

		// n! / (nd+k)! as a running product, per the factorial-range trick.
		num := new(big.Int).Set(fact(nd+k+1, n))
		num.Mul(num, new(big.Int).Exp(big.NewInt(n-nTie), big.NewInt(nd+2*k), nil))
		num.Mul(num, new(big.Int).Exp(big.NewInt(nTie), big.NewInt(nTies), nil))

		den := new(big.Int).Mul(fact(1, k), fact(1, nTies))
		den.Mul(den, new(big.Int).Exp(big.NewInt(2*n), big.NewInt(nd+2*k), nil))
		den.Mul(den, new(big.Int).Exp(big.NewInt(n), big.NewInt(nTies), nil))

		sum.Add(sum, new(big.Rat).SetFrac(num, den))
	}

	return sum
}

func factorial(a, b int64) *big.Int {
	return big.NewInt(1).MulRange(a, b)
}
