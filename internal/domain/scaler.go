package domain

import (
	"fmt"
	"math"
)

// Scaler is a fitted per-column affine normalization: scaled = x*Scale + Offset.
// This is the algebra of sklearn's MinMaxScaler (scale_, min_) and
// StandardScaler (1/sigma, -mu/sigma); the exported training pipeline writes
// the two vectors out as JSON. The inverse being exact per column is what
// makes InverseColumn valid: reconstructing one column never needs the true
// values of the others.
type Scaler struct {
	Columns []string
	Scale   []float64
	Offset  []float64
}

func (s *Scaler) Validate() error {
	if len(s.Scale) == 0 || len(s.Scale) != len(s.Offset) {
		return fmt.Errorf("%w: scale has %d entries, offset has %d", ErrDimensionMismatch, len(s.Scale), len(s.Offset))
	}
	if len(s.Columns) != 0 && len(s.Columns) != len(s.Scale) {
		return fmt.Errorf("%w: %d columns for %d scale entries", ErrDimensionMismatch, len(s.Columns), len(s.Scale))
	}
	for i, v := range s.Scale {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("scaler column %d has non-invertible scale %v", i, v)
		}
	}
	return nil
}

// Dim is the number of columns the scaler was fitted on.
func (s *Scaler) Dim() int { return len(s.Scale) }

func (s *Scaler) TransformRow(row []float64) ([]float64, error) {
	if len(row) != s.Dim() {
		return nil, fmt.Errorf("%w: got %d values, scaler expects %d", ErrDimensionMismatch, len(row), s.Dim())
	}
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = v*s.Scale[i] + s.Offset[i]
	}
	return out, nil
}

func (s *Scaler) InverseRow(row []float64) ([]float64, error) {
	if len(row) != s.Dim() {
		return nil, fmt.Errorf("%w: got %d values, scaler expects %d", ErrDimensionMismatch, len(row), s.Dim())
	}
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = (v - s.Offset[i]) / s.Scale[i]
	}
	return out, nil
}

// InverseColumn undoes the scaling of a single column. A zero-filled dummy
// row carries the scaled value through InverseRow and only the requested
// column is read back, mirroring how the training side reconstructs a lone
// predicted target from a jointly fitted scaler.
func (s *Scaler) InverseColumn(col int, scaled float64) (float64, error) {
	if col < 0 || col >= s.Dim() {
		return 0, fmt.Errorf("%w: column %d out of range for %d-column scaler", ErrDimensionMismatch, col, s.Dim())
	}
	dummy := make([]float64, s.Dim())
	dummy[col] = scaled
	row, err := s.InverseRow(dummy)
	if err != nil {
		return 0, err
	}
	return row[col], nil
}
