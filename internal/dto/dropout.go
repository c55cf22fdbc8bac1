package dto

import "vaccineai-service/internal/domain"

type DropoutRequest struct {
	Gender           string  `json:"gender" binding:"required"`
	Age              int     `json:"age"`
	TravelTime       int     `json:"travel_time"`
	ParentEducation  string  `json:"parent_education" binding:"required"`
	Dose1Date        string  `json:"dose1_date" binding:"required"`
	Dose2Date        string  `json:"dose2_date" binding:"required"`
	DistanceToCenter float64 `json:"distance_to_center"`
	DelayDays        int     `json:"delay_days"`
}

func (r DropoutRequest) ToDomain() domain.DropoutRequest {
	return domain.DropoutRequest{
		Gender:           r.Gender,
		Age:              r.Age,
		TravelTime:       r.TravelTime,
		ParentEducation:  r.ParentEducation,
		Dose1Date:        r.Dose1Date,
		Dose2Date:        r.Dose2Date,
		DistanceToCenter: r.DistanceToCenter,
		DelayDays:        r.DelayDays,
	}
}

// DropoutEcho mirrors the request back using the training-side display keys.
type DropoutEcho struct {
	Gender           string  `json:"Gender"`
	Age              int     `json:"Age"`
	TravelTime       int     `json:"Travel Time"`
	ParentEducation  string  `json:"Parent Education"`
	Dose1Date        string  `json:"Dose1 Date"`
	Dose2Date        string  `json:"Dose2 Date"`
	DistanceToCenter float64 `json:"Distance to Center"`
	DelayDays        int     `json:"Delay_Days"`
}

func ToDropoutEcho(r DropoutRequest) DropoutEcho {
	return DropoutEcho{
		Gender:           r.Gender,
		Age:              r.Age,
		TravelTime:       r.TravelTime,
		ParentEducation:  r.ParentEducation,
		Dose1Date:        r.Dose1Date,
		Dose2Date:        r.Dose2Date,
		DistanceToCenter: r.DistanceToCenter,
		DelayDays:        r.DelayDays,
	}
}

type DropoutResponse struct {
	PredictionLabel    int         `json:"prediction_label"`
	PredictionText     string      `json:"prediction_text"`
	Confidence         float64     `json:"confidence"`
	ProbabilityDelayed float64     `json:"probability_delayed"`
	ProbabilityOnTime  float64     `json:"probability_on_time"`
	RiskLevel          string      `json:"risk_level"`
	InputData          DropoutEcho `json:"input_data"`
}

func ToDropoutResponse(req DropoutRequest, p *domain.DropoutPrediction) DropoutResponse {
	return DropoutResponse{
		PredictionLabel:    p.Label,
		PredictionText:     p.Text,
		Confidence:         p.Confidence,
		ProbabilityDelayed: p.ProbabilityDelayed,
		ProbabilityOnTime:  p.ProbabilityOnTime,
		RiskLevel:          p.RiskLevel,
		InputData:          ToDropoutEcho(req),
	}
}

type ModelInfo struct {
	ModelName      string   `json:"model_name"`
	TrainingDate   string   `json:"training_date"`
	BestScore      float64  `json:"best_score"`
	FeatureColumns []string `json:"feature_columns"`
	ModelType      string   `json:"model_type"`
}

type ModelInfoResponse struct {
	Status    string    `json:"status"`
	ModelInfo ModelInfo `json:"model_info"`
}

func ToModelInfoResponse(info *domain.DropoutModelInfo) ModelInfoResponse {
	return ModelInfoResponse{
		Status: "success",
		ModelInfo: ModelInfo{
			ModelName:      info.ModelName,
			TrainingDate:   info.TrainingDate,
			BestScore:      info.BestScore,
			FeatureColumns: info.FeatureColumns,
			ModelType:      info.ModelType,
		},
	}
}
