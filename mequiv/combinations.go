// SPDX-License-Identifier: MIT
//
// File: combinations.go
// Role: m-combination enumeration of {0,…,n-1}.
// Determinism:
//   - The Gosper path visits masks in increasing numeric order (colex order
//     of the index lists); the index stepper visits lexicographic order.

package mequiv

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// ErrInvalidArgument indicates a negative size or m.
var ErrInvalidArgument = errors.New("mequiv: invalid argument")

// Combinations calls visit with every m-subset of {0,…,n-1} as an ascending
// index slice. The slice is reused between calls; copy it to keep it.
// Enumeration stops early when visit returns false.
func Combinations(n, m int, visit func(comb []int) bool) error {
	if n < 0 || m < 0 {
		return fmt.Errorf("mequiv: Combinations(%d, %d): %w", n, m, ErrInvalidArgument)
	}
	if m > n {
		return nil
	}
	if m == 0 {
		visit([]int{})
		return nil
	}
	if n <= 64 {
		gosper(n, m, visit)
		return nil
	}
	stepper(n, m, visit)

	return nil
}

// gosper walks m-bit masks below 2^n in increasing order.
func gosper(n, m int, visit func([]int) bool) {
	buf := make([]int, m)
	var mask uint64
	if m == 64 {
		mask = ^uint64(0)
	} else {
		mask = uint64(1)<<uint(m) - 1
	}
	for {
		if n < 64 && mask>>uint(n) != 0 {
			return
		}
		i := 0
		for rest := mask; rest != 0; rest &= rest - 1 {
			buf[i] = bits.TrailingZeros64(rest)
			i++
		}
		if !visit(buf) {
			return
		}
		// Next mask with the same popcount.
		c := mask & -mask
		r := mask + c
		if r == 0 {
			return
		}
		mask = (((r ^ mask) >> 2) / c) | r
	}
}

// stepper walks index arrays in lexicographic order.
func stepper(n, m int, visit func([]int) bool) {
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return
		}
		i := m - 1
		for i >= 0 && idx[i] == n-m+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < m; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Count returns C(n, m), or 0 when m > n.
func Count(n, m int) *big.Int {
	if m < 0 || n < 0 || m > n {
		return big.NewInt(0)
	}

	return new(big.Int).Binomial(int64(n), int64(m))
}
