package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalerTransformRow(t *testing.T) {
	s := &Scaler{Scale: []float64{2, 0.5}, Offset: []float64{1, -1}}
	assert.NoError(t, s.Validate())

	out, err := s.TransformRow([]float64{3, 4})
	assert.NoError(t, err)
	assert.Equal(t, []float64{7, 1}, out)
}

func TestScalerInverseRoundTrip(t *testing.T) {
	// MinMaxScaler fitted on doses in [0, 500]: scale = 1/500, offset = 0.
	s := &Scaler{
		Scale:  []float64{1.0 / 500, 0.02, 1, 0.005, 1},
		Offset: []float64{0, -0.7, 0, -0.3, 0},
	}
	assert.NoError(t, s.Validate())

	row := []float64{340, 38.5, 0.0, 120, 1}
	scaled, err := s.TransformRow(row)
	assert.NoError(t, err)
	back, err := s.InverseRow(scaled)
	assert.NoError(t, err)
	for i := range row {
		assert.InDelta(t, row[i], back[i], 1e-9)
	}
}

func TestScalerInverseColumn(t *testing.T) {
	s := &Scaler{
		Scale:  []float64{1.0 / 500, 0.02, 1, 0.005, 1},
		Offset: []float64{0, -0.7, 0, -0.3, 0},
	}

	// Undoing a single column must match the per-column affine formula
	// directly, without knowing the other columns.
	scaled := 0.684
	got, err := s.InverseColumn(0, scaled)
	assert.NoError(t, err)
	assert.InDelta(t, (scaled-0)/(1.0/500), got, 1e-9)

	_, err = s.InverseColumn(5, 0.5)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScalerDimensionChecks(t *testing.T) {
	s := &Scaler{Scale: []float64{1, 1}, Offset: []float64{0, 0}}

	_, err := s.TransformRow([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = s.InverseRow([]float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScalerValidate(t *testing.T) {
	bad := &Scaler{Scale: []float64{1, 0}, Offset: []float64{0, 0}}
	assert.Error(t, bad.Validate())

	mismatch := &Scaler{Scale: []float64{1}, Offset: []float64{0, 0}}
	assert.ErrorIs(t, mismatch.Validate(), ErrDimensionMismatch)

	named := &Scaler{Columns: []string{"a"}, Scale: []float64{1, 1}, Offset: []float64{0, 0}}
	assert.ErrorIs(t, named.Validate(), ErrDimensionMismatch)
}

func TestLabelEncoder(t *testing.T) {
	encoders := LabelEncoders{
		"Gender": {Classes: []string{"Female", "Male"}},
	}

	v, err := encoders.Encode("Gender", "Male")
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = encoders.Encode("Gender", "Other")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = encoders.Encode("Region", "North")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestClusterSummaryRow(t *testing.T) {
	summary := ClusterSummary{
		{Cluster: 0, ZeroDoseCount: 40},
		{Cluster: 2, ZeroDoseCount: 180},
	}

	row, err := summary.Row(2)
	assert.NoError(t, err)
	assert.Equal(t, 180.0, row.ZeroDoseCount)

	_, err = summary.Row(1)
	assert.ErrorIs(t, err, ErrClusterNotInSummary)
}
