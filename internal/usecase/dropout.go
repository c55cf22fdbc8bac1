package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"vaccineai-service/internal/domain"
)

// parentEducationLevels is the fixed ordinal mapping the classifier was
// trained with.
var parentEducationLevels = map[string]float64{
	"Primary":   1,
	"Secondary": 2,
	"Graduate":  3,
}

type DropoutUseCase struct {
	store domain.ArtifactStore
}

func NewDropoutUseCase(store domain.ArtifactStore) *DropoutUseCase {
	return &DropoutUseCase{store: store}
}

// Predict classifies whether the second dose will be delivered on time.
func (uc *DropoutUseCase) Predict(ctx context.Context, req domain.DropoutRequest) (*domain.DropoutPrediction, error) {
	bundle, err := uc.store.Dropout()
	if err != nil {
		return nil, err
	}

	features, err := buildDropoutFeatures(req, bundle)
	if err != nil {
		return nil, err
	}
	scaled, err := bundle.Scaler.TransformRow(features)
	if err != nil {
		return nil, err
	}

	label, probabilities, err := bundle.Model.Predict(scaled)
	if err != nil {
		return nil, err
	}
	if len(probabilities) != 2 {
		return nil, fmt.Errorf("%w: classifier returned %d probabilities, expected 2", domain.ErrDimensionMismatch, len(probabilities))
	}

	text := "Delayed"
	if label == 1 {
		text = "On Time"
	}
	onTime := probabilities[1]

	riskLevel := "High"
	switch {
	case onTime > 0.7:
		riskLevel = "Low"
	case onTime > 0.4:
		riskLevel = "Medium"
	}

	return &domain.DropoutPrediction{
		Label:              label,
		Text:               text,
		Confidence:         math.Max(probabilities[0], probabilities[1]) * 100,
		ProbabilityDelayed: probabilities[0] * 100,
		ProbabilityOnTime:  onTime * 100,
		RiskLevel:          riskLevel,
	}, nil
}

// ModelInfo reports the loaded classifier's training metadata without
// running a prediction.
func (uc *DropoutUseCase) ModelInfo(ctx context.Context) (*domain.DropoutModelInfo, error) {
	bundle, err := uc.store.Dropout()
	if err != nil {
		return nil, err
	}
	if bundle.Metadata == nil {
		return nil, domain.ErrMetadataUnavailable
	}
	return &domain.DropoutModelInfo{
		ModelName:      bundle.Metadata.BestModelName,
		TrainingDate:   bundle.Metadata.TrainingDate,
		BestScore:      bundle.Metadata.BestScore,
		FeatureColumns: bundle.FeatureColumns,
		ModelType:      bundle.Metadata.ModelType,
	}, nil
}

// buildDropoutFeatures derives the classifier's named features from the raw
// request and orders them by the artifact's feature-column list. Column
// order is owned by that list alone; nothing here may reorder or drop a
// column silently.
func buildDropoutFeatures(req domain.DropoutRequest, bundle *domain.DropoutBundle) ([]float64, error) {
	dose1, err := parseDoseDate(req.Dose1Date)
	if err != nil {
		return nil, fmt.Errorf("%w: dose1_date %q", domain.ErrInvalidDate, req.Dose1Date)
	}
	dose2, err := parseDoseDate(req.Dose2Date)
	if err != nil {
		return nil, fmt.Errorf("%w: dose2_date %q", domain.ErrInvalidDate, req.Dose2Date)
	}

	gender, err := bundle.Encoders.Encode("Gender", req.Gender)
	if err != nil {
		return nil, err
	}
	education, ok := parentEducationLevels[req.ParentEducation]
	if !ok {
		return nil, fmt.Errorf("%w: parent_education %q", domain.ErrUnknownCategory, req.ParentEducation)
	}

	travelTime := float64(req.TravelTime)

	// Undefined ratios (zero distance) collapse to zero rather than failing.
	travelDistanceRatio := 0.0
	if req.DistanceToCenter != 0 {
		travelDistanceRatio = travelTime / req.DistanceToCenter
	}
	if math.IsInf(travelDistanceRatio, 0) || math.IsNaN(travelDistanceRatio) {
		travelDistanceRatio = 0
	}

	values := map[string]float64{
		"Age":                      float64(req.Age),
		"Travel Time":              travelTime,
		"Distance to Center":       req.DistanceToCenter,
		"Delay_Days":               float64(req.DelayDays),
		"Dose1_Month":              float64(dose1.Month()),
		"Dose1_DayOfWeek":          float64(pandasWeekday(dose1)),
		"Days_Between_Doses":       daysBetween(dose1, dose2),
		"Travel_Distance_Ratio":    travelDistanceRatio,
		"Age_Travel_Interaction":   float64(req.Age) * travelTime,
		"Gender_Encoded":           float64(gender),
		"Parent_Education_Encoded": education,
	}

	features := make([]float64, len(bundle.FeatureColumns))
	for i, column := range bundle.FeatureColumns {
		v, ok := values[column]
		if !ok {
			return nil, fmt.Errorf("%w: model expects column %q which is not derived from the request", domain.ErrDimensionMismatch, column)
		}
		// With a batch of one, mean imputation cannot repair a hole; a
		// non-finite feature is an error instead.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNonFiniteFeature, column)
		}
		features[i] = v
	}
	return features, nil
}

func parseDoseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// pandasWeekday numbers Monday as 0 through Sunday as 6, matching the
// convention the training features were built with.
func pandasWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func daysBetween(from, to time.Time) float64 {
	return math.Trunc(to.Sub(from).Hours() / 24)
}
