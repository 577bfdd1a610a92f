// Package random provides the injectable random source used for computer moves and obstacle placement.
package random

import (
	"math/rand/v2"
	"time"
)

// Source returns a uniformly distributed value in [0, n). n must be positive.
type Source interface {
	IntN(n int) int
}

type pcgSource struct {
	rnd *rand.Rand
}

// New returns a PCG backed source. A zero seed is replaced by the current time.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}

	return &pcgSource{
		rnd: rand.New(rand.NewPCG(seed, seed>>1|1)), //nolint: gosec // game randomness only
	}
}

func (that *pcgSource) IntN(n int) int {
	return that.rnd.IntN(n)
}

// Scripted replays a fixed list of values, wrapping each into [0, n).
// It cycles when the list is exhausted.
type Scripted struct {
	values []int
	next   int
}

func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (that *Scripted) IntN(n int) int {
	if len(that.values) == 0 {
		return 0
	}

	value := that.values[that.next%len(that.values)]
	that.next++

	if value < 0 {
		value = -value
	}

	return value % n
}

// Calls reports how many values were drawn.
func (that *Scripted) Calls() int {
	return that.next
}
