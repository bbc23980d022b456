package entities

import "math"

// Quantity is a strictly positive unit count.
type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n <= 0 {
		return Quantity{}, NewInvalidInput("quantity must be greater than zero, got %d", n)
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Int() int {
	return q.value
}

// Add sums two quantities. A sum that does not fit in an int is InvalidInput.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if other.value > math.MaxInt-q.value {
		return Quantity{}, NewInvalidInput("quantity %d plus %d is too large", q.value, other.value)
	}
	return Quantity{value: q.value + other.value}, nil
}
