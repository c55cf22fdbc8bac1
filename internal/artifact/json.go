package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"vaccineai-service/internal/domain"
)

type scalerFile struct {
	Columns []string  `json:"columns"`
	Scale   []float64 `json:"scale"`
	Offset  []float64 `json:"offset"`
}

func loadScaler(path string) (*domain.Scaler, error) {
	var f scalerFile
	if err := readJSON(path, &f); err != nil {
		return nil, err
	}
	s := &domain.Scaler{Columns: f.Columns, Scale: f.Scale, Offset: f.Offset}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

type encodersFile map[string]struct {
	Classes []string `json:"classes"`
}

func loadLabelEncoders(path string) (domain.LabelEncoders, error) {
	var f encodersFile
	if err := readJSON(path, &f); err != nil {
		return nil, err
	}
	encoders := make(domain.LabelEncoders, len(f))
	for name, enc := range f {
		if len(enc.Classes) == 0 {
			return nil, fmt.Errorf("%s: encoder %q has no classes", path, name)
		}
		encoders[name] = domain.LabelEncoder{Classes: enc.Classes}
	}
	return encoders, nil
}

func loadFeatureColumns(path string) ([]string, error) {
	var columns []string
	if err := readJSON(path, &columns); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: feature column list is empty", path)
	}
	return columns, nil
}

type metadataFile struct {
	BestModelName string  `json:"best_model_name"`
	TrainingDate  string  `json:"training_date"`
	BestScore     float64 `json:"best_score"`
	ModelType     string  `json:"model_type"`
}

// loadMetadata returns nil without error when the file is absent; metadata
// is an optional artifact.
func loadMetadata(path string) (*domain.ModelMetadata, error) {
	var f metadataFile
	if err := readJSON(path, &f); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.ModelMetadata{
		BestModelName: f.BestModelName,
		TrainingDate:  f.TrainingDate,
		BestScore:     f.BestScore,
		ModelType:     f.ModelType,
	}, nil
}

type summaryRowFile struct {
	Cluster       int     `json:"cluster"`
	ZeroDoseCount float64 `json:"zero_dose_count"`
	Income        float64 `json:"income"`
	TravelTime    float64 `json:"travel_time"`
	LiteracyRate  float64 `json:"literacy_rate"`
	PriorityScore float64 `json:"priority_score"`
	CityNames     string  `json:"city_names"`
}

func loadClusterSummary(path string) (domain.ClusterSummary, error) {
	var rows []summaryRowFile
	if err := readJSON(path, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: cluster summary is empty", path)
	}
	summary := make(domain.ClusterSummary, 0, len(rows))
	for _, r := range rows {
		summary = append(summary, domain.ClusterSummaryRow{
			Cluster:       r.Cluster,
			ZeroDoseCount: r.ZeroDoseCount,
			Income:        r.Income,
			TravelTime:    r.TravelTime,
			LiteracyRate:  r.LiteracyRate,
			PriorityScore: r.PriorityScore,
			CityNames:     r.CityNames,
		})
	}
	return summary, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
