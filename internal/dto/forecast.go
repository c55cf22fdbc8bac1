package dto

import "vaccineai-service/internal/domain"

type ForecastRequest struct {
	District         string  `json:"district" binding:"required"`
	VaccineType      string  `json:"vaccine_type" binding:"required"`
	Temperature      float64 `json:"temperature"`
	Rainfall         float64 `json:"rainfall"`
	StockLeft        int     `json:"stock_left"`
	HolidayIndicator int     `json:"holiday_indicator"`
}

func (r ForecastRequest) ToDomain() domain.ForecastRequest {
	return domain.ForecastRequest{
		District:         r.District,
		VaccineType:      r.VaccineType,
		Temperature:      r.Temperature,
		Rainfall:         r.Rainfall,
		StockLeft:        r.StockLeft,
		HolidayIndicator: r.HolidayIndicator,
	}
}

type ForecastInputParameters struct {
	Temperature      float64 `json:"temperature"`
	Rainfall         float64 `json:"rainfall"`
	StockLeft        int     `json:"stock_left"`
	HolidayIndicator int     `json:"holiday_indicator"`
}

type ForecastResponse struct {
	Model           string                  `json:"model"`
	Prediction      int                     `json:"prediction"`
	District        string                  `json:"district"`
	VaccineType     string                  `json:"vaccine_type"`
	InputParameters ForecastInputParameters `json:"input_parameters"`
}

func ToForecastResponse(req ForecastRequest, result *domain.ForecastResult) ForecastResponse {
	return ForecastResponse{
		Model:       result.Model,
		Prediction:  result.Prediction,
		District:    result.District,
		VaccineType: result.VaccineType,
		InputParameters: ForecastInputParameters{
			Temperature:      req.Temperature,
			Rainfall:         req.Rainfall,
			StockLeft:        req.StockLeft,
			HolidayIndicator: req.HolidayIndicator,
		},
	}
}

type ForecastAllRequest struct {
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	StockLeft   int     `json:"stock_left"`
	Holiday     int     `json:"holiday"`
}

// CombinationDemand reports one combination in a batch forecast;
// predicted_demand is the dose count, or a reason string when that
// combination's model could not serve.
type CombinationDemand struct {
	District        string `json:"district"`
	VaccineType     string `json:"vaccine_type"`
	PredictedDemand any    `json:"predicted_demand"`
}

func ToForecastAllResponse(results []domain.CombinationDemand) map[string]CombinationDemand {
	out := make(map[string]CombinationDemand, len(results))
	for _, r := range results {
		demand := CombinationDemand{District: r.District, VaccineType: r.VaccineType}
		if r.Err != "" {
			demand.PredictedDemand = r.Err
		} else {
			demand.PredictedDemand = r.Prediction
		}
		out[r.District+"_"+r.VaccineType] = demand
	}
	return out
}
