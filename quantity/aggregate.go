package quantity

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/rotblauer/mks/dimension"
)

// collect checks that all operands share the first one's dimension
// and returns their magnitudes.
func collect(op string, operands []Operand) (stats.Float64Data, dimension.Dimension, error) {
	if len(operands) == 0 {
		return nil, nil, fmt.Errorf("quantity: %s: %w", op, ErrEmpty)
	}
	first := operands[0].Quantity()
	data := make(stats.Float64Data, 0, len(operands))
	for _, o := range operands {
		q := o.Quantity()
		if err := first.match(op, q); err != nil {
			return nil, nil, err
		}
		data = append(data, q.magnitude)
	}
	return data, first.Dimension(), nil
}

func aggregate(op string, operands []Operand, fn func(stats.Float64Data) (float64, error)) (Quantity, error) {
	data, dim, err := collect(op, operands)
	if err != nil {
		return Quantity{}, err
	}
	v, err := fn(data)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity: %s: %w", op, err)
	}
	return Quantity{magnitude: v, dimension: dim}, nil
}

// Sum adds all operands. The sum of nothing is the dimensionless 0.
func Sum(operands ...Operand) (Quantity, error) {
	if len(operands) == 0 {
		return Quantity{}, nil
	}
	return aggregate("sum", operands, stats.Float64Data.Sum)
}

func Mean(operands ...Operand) (Quantity, error) {
	return aggregate("mean", operands, stats.Float64Data.Mean)
}

func Median(operands ...Operand) (Quantity, error) {
	return aggregate("median", operands, stats.Float64Data.Median)
}

func Min(operands ...Operand) (Quantity, error) {
	return aggregate("min", operands, stats.Float64Data.Min)
}

func Max(operands ...Operand) (Quantity, error) {
	return aggregate("max", operands, stats.Float64Data.Max)
}
