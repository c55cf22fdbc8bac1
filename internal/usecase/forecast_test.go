package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vaccineai-service/internal/domain"
	"vaccineai-service/internal/testutil"
)

func identityScaler(dim int) *domain.Scaler {
	scale := make([]float64, dim)
	offset := make([]float64, dim)
	for i := range scale {
		scale[i] = 1
	}
	return &domain.Scaler{Scale: scale, Offset: offset}
}

func TestForecastPredict_WindowConstruction(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	model := new(testutil.MockSequenceModel)
	uc := NewForecastUseCase(store)

	key := domain.Combination{District: "Pune", Vaccine: "BCG"}
	store.On("Forecast", key).Return(&domain.ForecastBundle{Scaler: identityScaler(5), Model: model}, nil)

	var window [][]float64
	model.On("Predict", mock.Anything).Run(func(args mock.Arguments) {
		window = args.Get(0).([][]float64)
	}).Return(123.0, nil)

	result, err := uc.Predict(context.Background(), domain.ForecastRequest{
		District:    "Pune",
		VaccineType: "BCG",
		Temperature: 22.5,
		Rainfall:    0.0,
		StockLeft:   30,
	})
	assert.NoError(t, err)
	assert.Equal(t, "LSTM", result.Model)
	assert.Equal(t, 123, result.Prediction)
	assert.GreaterOrEqual(t, result.Prediction, 0)

	// Seeded Pune/BCG history ending 2024-02-14: the doses column stays
	// historical in every row, including the last.
	assert.Len(t, window, 5)
	doses := []float64{320, 325, 330, 335, 340}
	for i, row := range window {
		assert.Equal(t, doses[i], row[domain.ColDoses])
	}
	// Only the last row's signal columns carry the request.
	assert.Equal(t, []float64{340, 22.5, 0.0, 30, 0}, window[4])
	assert.Equal(t, 37.6, window[0][domain.ColTemperature])
	model.AssertExpectations(t)
}

func TestForecastPredict_InverseTransformAndClamp(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	model := new(testutil.MockSequenceModel)
	uc := NewForecastUseCase(store)

	// Non-trivial scaler: doses scaled by 1/500, so the model output must be
	// multiplied back by 500 before truncation.
	scaler := &domain.Scaler{
		Scale:  []float64{1.0 / 500, 1, 1, 1, 1},
		Offset: []float64{0, 0, 0, 0, 0},
	}
	key := domain.Combination{District: "Mumbai", Vaccine: "Polio"}
	store.On("Forecast", key).Return(&domain.ForecastBundle{Scaler: scaler, Model: model}, nil)
	model.On("Predict", mock.Anything).Return(0.8417, nil).Once()

	result, err := uc.Predict(context.Background(), domain.ForecastRequest{District: "Mumbai", VaccineType: "Polio"})
	assert.NoError(t, err)
	assert.Equal(t, 420, result.Prediction) // 0.8417*500 = 420.85, truncated

	// Negative reconstructions clamp to zero demand.
	model.On("Predict", mock.Anything).Return(-0.2, nil).Once()
	result, err = uc.Predict(context.Background(), domain.ForecastRequest{District: "Mumbai", VaccineType: "Polio"})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Prediction)
}

func TestForecastPredict_UnsupportedCombination(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	uc := NewForecastUseCase(store)

	_, err := uc.Predict(context.Background(), domain.ForecastRequest{District: "Delhi", VaccineType: "Polio"})
	assert.ErrorIs(t, err, domain.ErrCombinationNotSupported)
	store.AssertNotCalled(t, "Forecast", mock.Anything)
}

func TestForecastSupportedCombinations(t *testing.T) {
	uc := NewForecastUseCase(new(testutil.MockArtifactStore))

	assert.Equal(t, []string{"Mumbai - Polio", "Nashik - Measles", "Pune - BCG"}, uc.SupportedCombinations())
}

func TestForecastPredictAll_IsolatesFailures(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	model := new(testutil.MockSequenceModel)
	uc := NewForecastUseCase(store)

	bundle := &domain.ForecastBundle{Scaler: identityScaler(5), Model: model}
	store.On("Forecast", domain.Combination{District: "Mumbai", Vaccine: "Polio"}).Return(bundle, nil)
	store.On("Forecast", domain.Combination{District: "Nashik", Vaccine: "Measles"}).Return(nil, domain.ErrArtifactNotFound)
	store.On("Forecast", domain.Combination{District: "Pune", Vaccine: "BCG"}).Return(bundle, nil)
	model.On("Predict", mock.Anything).Return(200.0, nil)

	results := uc.PredictAll(context.Background(), domain.DemandSignals{Temperature: 25, StockLeft: 10})
	assert.Len(t, results, 3)

	byKey := make(map[string]domain.CombinationDemand)
	for _, r := range results {
		byKey[r.District+"_"+r.VaccineType] = r
	}
	assert.Equal(t, 200, byKey["Mumbai_Polio"].Prediction)
	assert.Empty(t, byKey["Mumbai_Polio"].Err)
	assert.Equal(t, "Model files not found", byKey["Nashik_Measles"].Err)
	assert.Equal(t, 200, byKey["Pune_BCG"].Prediction)
}
