package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"vaccineai-service/internal/domain"
)

// seededHistory is the trailing five daily records per supported
// combination, ending 2024-02-14. It mirrors the series the demand models
// were trained against; the serving window is built from these rows, with
// only the last row's signal columns replaced by the incoming request.
var seededHistory = map[domain.Combination][]domain.DailyRecord{
	{District: "Mumbai", Vaccine: "Polio"}: {
		{Date: "2024-02-10", AdministeredDoses: 395, Temperature: 40.3, Rainfall: 0.0, StockLeft: 100, Holiday: 1},
		{Date: "2024-02-11", AdministeredDoses: 400, Temperature: 40.5, Rainfall: 0.0, StockLeft: 90, Holiday: 0},
		{Date: "2024-02-12", AdministeredDoses: 405, Temperature: 40.8, Rainfall: 0.0, StockLeft: 80, Holiday: 0},
		{Date: "2024-02-13", AdministeredDoses: 410, Temperature: 41.0, Rainfall: 0.0, StockLeft: 70, Holiday: 0},
		{Date: "2024-02-14", AdministeredDoses: 415, Temperature: 41.2, Rainfall: 0.1, StockLeft: 60, Holiday: 0},
	},
	{District: "Nashik", Vaccine: "Measles"}: {
		{Date: "2024-02-10", AdministeredDoses: 275, Temperature: 36.2, Rainfall: 0.0, StockLeft: 0, Holiday: 1},
		{Date: "2024-02-11", AdministeredDoses: 280, Temperature: 36.4, Rainfall: 0.0, StockLeft: 0, Holiday: 0},
		{Date: "2024-02-12", AdministeredDoses: 285, Temperature: 36.6, Rainfall: 0.1, StockLeft: 0, Holiday: 0},
		{Date: "2024-02-13", AdministeredDoses: 290, Temperature: 36.9, Rainfall: 0.0, StockLeft: 0, Holiday: 0},
		{Date: "2024-02-14", AdministeredDoses: 295, Temperature: 37.1, Rainfall: 0.0, StockLeft: 0, Holiday: 0},
	},
	{District: "Pune", Vaccine: "BCG"}: {
		{Date: "2024-02-10", AdministeredDoses: 320, Temperature: 37.6, Rainfall: 0.1, StockLeft: 0, Holiday: 1},
		{Date: "2024-02-11", AdministeredDoses: 325, Temperature: 37.9, Rainfall: 0.0, StockLeft: 0, Holiday: 0},
		{Date: "2024-02-12", AdministeredDoses: 330, Temperature: 38.0, Rainfall: 0.1, StockLeft: 0, Holiday: 0},
		{Date: "2024-02-13", AdministeredDoses: 335, Temperature: 38.2, Rainfall: 0.0, StockLeft: 0, Holiday: 0},
		{Date: "2024-02-14", AdministeredDoses: 340, Temperature: 38.5, Rainfall: 0.0, StockLeft: 0, Holiday: 0},
	},
}

const forecastModelName = "LSTM"

type ForecastUseCase struct {
	store   domain.ArtifactStore
	history map[domain.Combination][]domain.DailyRecord
}

func NewForecastUseCase(store domain.ArtifactStore) *ForecastUseCase {
	return &ForecastUseCase{store: store, history: seededHistory}
}

// SupportedCombinations lists every combination a model exists for, as
// "District - Vaccine" strings in stable order.
func (uc *ForecastUseCase) SupportedCombinations() []string {
	combos := make([]string, 0, len(uc.history))
	for key := range uc.history {
		combos = append(combos, key.String())
	}
	sort.Strings(combos)
	return combos
}

// Predict forecasts the next day's administered-dose count for one
// combination.
func (uc *ForecastUseCase) Predict(ctx context.Context, req domain.ForecastRequest) (*domain.ForecastResult, error) {
	key := domain.Combination{District: req.District, Vaccine: req.VaccineType}
	signals := domain.DemandSignals{
		Temperature: req.Temperature,
		Rainfall:    req.Rainfall,
		StockLeft:   req.StockLeft,
		Holiday:     req.HolidayIndicator,
	}
	prediction, err := uc.predictOne(key, signals)
	if err != nil {
		return nil, err
	}
	return &domain.ForecastResult{
		Model:       forecastModelName,
		Prediction:  prediction,
		District:    req.District,
		VaccineType: req.VaccineType,
	}, nil
}

// PredictAll runs the forecast for every supported combination with one
// shared signal set. Per-combination failures become inline reasons, never
// an error for the batch.
func (uc *ForecastUseCase) PredictAll(ctx context.Context, signals domain.DemandSignals) []domain.CombinationDemand {
	keys := make([]domain.Combination, 0, len(uc.history))
	for key := range uc.history {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	results := make([]domain.CombinationDemand, 0, len(keys))
	for _, key := range keys {
		demand := domain.CombinationDemand{District: key.District, VaccineType: key.Vaccine}
		prediction, err := uc.predictOne(key, signals)
		switch {
		case errors.Is(err, domain.ErrArtifactNotFound):
			demand.Err = "Model files not found"
		case err != nil:
			demand.Err = fmt.Sprintf("Model not available: %v", err)
		default:
			demand.Prediction = prediction
		}
		results = append(results, demand)
	}
	return results
}

func (uc *ForecastUseCase) predictOne(key domain.Combination, signals domain.DemandSignals) (int, error) {
	history, ok := uc.history[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrCombinationNotSupported, key)
	}

	bundle, err := uc.store.Forecast(key)
	if err != nil {
		return 0, err
	}

	window := buildWindow(history, signals)
	scaled := make([][]float64, len(window))
	for i, row := range window {
		if scaled[i], err = bundle.Scaler.TransformRow(row); err != nil {
			return 0, err
		}
	}

	scaledPrediction, err := bundle.Model.Predict(scaled)
	if err != nil {
		return 0, err
	}
	actual, err := bundle.Scaler.InverseColumn(domain.ColDoses, scaledPrediction)
	if err != nil {
		return 0, err
	}

	prediction := int(actual)
	if prediction < 0 {
		prediction = 0
	}
	return prediction, nil
}

// buildWindow copies the historical rows and overwrites only the last row's
// signal columns with the request's values. The administered-doses column is
// the prediction target and stays historical in every row.
func buildWindow(history []domain.DailyRecord, signals domain.DemandSignals) [][]float64 {
	window := make([][]float64, len(history))
	for i, record := range history {
		window[i] = record.Row()
	}
	last := window[len(window)-1]
	last[domain.ColTemperature] = signals.Temperature
	last[domain.ColRainfall] = signals.Rainfall
	last[domain.ColStockLeft] = float64(signals.StockLeft)
	last[domain.ColHoliday] = float64(signals.Holiday)
	return window
}
