package orderbench

import (
	"errors"
	"fmt"
)

// Sublattices is the number of sublattice classes in the triangular
// three-coloring.
const Sublattices = 3

var (
	// ErrInvalidLength is returned when the lattice side length is not positive.
	ErrInvalidLength = errors.New("lattice length must be positive")

	// ErrEmptySublattice is returned when a sublattice class received no sites,
	// which leaves its magnetization undefined.
	ErrEmptySublattice = errors.New("empty sublattice")
)

// SublatticeClass returns the color class (0, 1 or 2) of a site index on an
// L×L triangular lattice.
//
// The index is first folded into one lattice copy (index mod L²), then
//
//	class = (row + index) mod 3,  row = ⌊index / L⌋
//
// which is the standard three-coloring of the triangular lattice stored
// row-major. The class is periodic under index → index + L².
// index must be non-negative and length positive.
func SublatticeClass(index, length int) int {
	reduced := index % (length * length)
	return (reduced/length + reduced) % Sublattices
}

// Accumulator collects signed spin counts per sublattice class.
// The zero value is ready to use; create one per record (and per layer).
type Accumulator struct {
	Sum        [Sublattices]int // +1 for every true bit, -1 for every false bit
	Population [Sublattices]int // Sites seen in each class
}

// Add records one site of the given class with its bit.
func (a *Accumulator) Add(class int, bit bool) {
	a.Population[class]++
	if bit {
		a.Sum[class]++
	} else {
		a.Sum[class]--
	}
}

// Sites returns the total number of sites accumulated.
func (a Accumulator) Sites() int {
	total := 0
	for _, n := range a.Population {
		total += n
	}
	return total
}

// Magnetizations returns Sum/Population for each class.
//
// Every class must be populated. An empty class returns an error wrapping
// ErrEmptySublattice instead of dividing by zero.
func (a Accumulator) Magnetizations() ([Sublattices]float64, error) {
	var m [Sublattices]float64
	for class := 0; class < Sublattices; class++ {
		if a.Population[class] == 0 {
			return m, fmt.Errorf("%w: class %d has no sites (populations %v)",
				ErrEmptySublattice, class, a.Population)
		}
		m[class] = float64(a.Sum[class]) / float64(a.Population[class])
	}
	return m, nil
}
