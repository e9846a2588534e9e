package application

import "math/rand/v2"

type Random interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}

func pick[T any](r Random, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.IntN(len(items))]
}
