package array

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// ErrInvalidSize indicates a requested array size below one.
var ErrInvalidSize = errors.New("array: size must be at least 1")

type Array []int

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

// IsPermutationOf reports whether a and other hold the same multiset of values.
func (a Array) IsPermutationOf(other Array) bool {
	if len(a) != len(other) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range other {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// Inversions counts pairs i < j with a[i] > a[j].
func (a Array) Inversions() int {
	if len(a) < 2 {
		return 0
	}
	work := a.Clone()
	buf := make([]int, len(a))
	return countInversions(work, buf)
}

func countInversions(a, buf []int) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	inv := countInversions(a[:mid], buf[:mid]) + countInversions(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			inv += mid - i
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:])
	copy(a, buf[:n])
	return inv
}

// InPlace counts positions already holding the value they hold once sorted.
func (a Array) InPlace() int {
	sorted := a.Clone()
	slices.Sort(sorted)
	count := 0
	for i := range a {
		if a[i] == sorted[i] {
			count++
		}
	}
	return count
}

type Order string

const (
	OrderRandom       Order = "random"
	OrderSorted       Order = "sorted"
	OrderReversed     Order = "reversed"
	OrderNearlySorted Order = "nearly-sorted"
)

var Orders = []Order{OrderRandom, OrderSorted, OrderReversed, OrderNearlySorted}

func ParseOrder(s string) (Order, error) {
	if s == "" {
		return OrderRandom, nil
	}
	for _, o := range Orders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown order: %s (available: %v)", s, Orders)
}

// Generate builds the values 1..n arranged according to order.
func Generate(n int, order Order, rng *rand.Rand) (Array, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, n)
	}

	a := make(Array, n)
	for i := range a {
		a[i] = i + 1
	}

	switch order {
	case OrderRandom, "":
		rng.Shuffle(n, func(i, j int) { a[i], a[j] = a[j], a[i] })
	case OrderSorted:
	case OrderReversed:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			a[i], a[j] = a[j], a[i]
		}
	case OrderNearlySorted:
		swaps := n / 10
		if swaps == 0 && n > 1 {
			swaps = 1
		}
		for s := 0; s < swaps; s++ {
			i := rng.Intn(n - 1)
			a[i], a[i+1] = a[i+1], a[i]
		}
	default:
		return nil, fmt.Errorf("unknown order: %s", order)
	}

	return a, nil
}
