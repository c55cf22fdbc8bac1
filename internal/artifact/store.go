package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"vaccineai-service/internal/domain"
)

const dropoutClasses = 2

// Store lazily loads artifact bundles from disk and caches them for the
// process lifetime. Loads are guarded by a double-checked mutex so
// concurrent first requests perform at most one effective load per bundle;
// a failed load leaves the slot empty and the next request retries.
type Store struct {
	dir string

	mu        sync.RWMutex
	forecasts map[domain.Combination]*domain.ForecastBundle
	dropout   *domain.DropoutBundle
	cluster   *domain.ClusterBundle

	// Model openers are swappable so the loader can be exercised without
	// the onnxruntime shared library.
	openSequence   func(path string, timesteps, columns int) (domain.SequenceModel, error)
	openClassifier func(path string, classes int) (domain.Classifier, error)
	openCluster    func(path string) (domain.ClusterModel, error)
}

func NewStore(dir string) *Store {
	return &Store{
		dir:            dir,
		forecasts:      make(map[domain.Combination]*domain.ForecastBundle),
		openSequence:   openSequenceModel,
		openClassifier: openClassifier,
		openCluster:    openClusterModel,
	}
}

func (s *Store) Forecast(key domain.Combination) (*domain.ForecastBundle, error) {
	s.mu.RLock()
	bundle := s.forecasts[key]
	s.mu.RUnlock()
	if bundle != nil {
		return bundle, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bundle := s.forecasts[key]; bundle != nil {
		return bundle, nil
	}

	modelPath := filepath.Join(s.dir, "forecast", key.Key()+"_model.onnx")
	scalerPath := filepath.Join(s.dir, "forecast", key.Key()+"_scaler.json")
	if err := requireFiles(modelPath, scalerPath); err != nil {
		return nil, fmt.Errorf("%w for %s", err, key)
	}

	scaler, err := loadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	if scaler.Dim() != domain.WindowColumns {
		return nil, fmt.Errorf("%w: %s scaler covers %d columns, window has %d",
			domain.ErrDimensionMismatch, key, scaler.Dim(), domain.WindowColumns)
	}
	model, err := s.openSequence(modelPath, domain.WindowSize, domain.WindowColumns)
	if err != nil {
		return nil, err
	}

	bundle = &domain.ForecastBundle{Scaler: scaler, Model: model}
	s.forecasts[key] = bundle
	log.WithField("combination", key.String()).Info("forecast artifacts loaded")
	return bundle, nil
}

func (s *Store) Dropout() (*domain.DropoutBundle, error) {
	s.mu.RLock()
	bundle := s.dropout
	s.mu.RUnlock()
	if bundle != nil {
		return bundle, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dropout != nil {
		return s.dropout, nil
	}

	dir := filepath.Join(s.dir, "dropout")
	modelPath := filepath.Join(dir, "model.onnx")
	scalerPath := filepath.Join(dir, "scaler.json")
	encodersPath := filepath.Join(dir, "label_encoders.json")
	columnsPath := filepath.Join(dir, "feature_columns.json")
	if err := requireFiles(modelPath, scalerPath, encodersPath, columnsPath); err != nil {
		return nil, err
	}

	metadata, err := loadMetadata(filepath.Join(dir, "model_metadata.json"))
	if err != nil {
		return nil, err
	}
	scaler, err := loadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	encoders, err := loadLabelEncoders(encodersPath)
	if err != nil {
		return nil, err
	}
	columns, err := loadFeatureColumns(columnsPath)
	if err != nil {
		return nil, err
	}
	if scaler.Dim() != len(columns) {
		return nil, fmt.Errorf("%w: dropout scaler covers %d columns, feature list has %d",
			domain.ErrDimensionMismatch, scaler.Dim(), len(columns))
	}
	model, err := s.openClassifier(modelPath, dropoutClasses)
	if err != nil {
		return nil, err
	}

	s.dropout = &domain.DropoutBundle{
		Metadata:       metadata,
		Model:          model,
		Scaler:         scaler,
		Encoders:       encoders,
		FeatureColumns: columns,
	}
	log.WithField("columns", len(columns)).Info("dropout artifacts loaded")
	return s.dropout, nil
}

func (s *Store) Cluster() (*domain.ClusterBundle, error) {
	s.mu.RLock()
	bundle := s.cluster
	s.mu.RUnlock()
	if bundle != nil {
		return bundle, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cluster != nil {
		return s.cluster, nil
	}

	dir := filepath.Join(s.dir, "cluster")
	modelPath := filepath.Join(dir, "model.onnx")
	scalerPath := filepath.Join(dir, "scaler.json")
	summaryPath := filepath.Join(dir, "cluster_summary.json")
	if err := requireFiles(modelPath, scalerPath, summaryPath); err != nil {
		return nil, err
	}

	scaler, err := loadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	summary, err := loadClusterSummary(summaryPath)
	if err != nil {
		return nil, err
	}
	model, err := s.openCluster(modelPath)
	if err != nil {
		return nil, err
	}

	s.cluster = &domain.ClusterBundle{Scaler: scaler, Model: model, Summary: summary}
	log.WithField("clusters", len(summary)).Info("cluster artifacts loaded")
	return s.cluster, nil
}

// requireFiles reports every missing artifact path, not just the first, so
// callers see the full set of files an operator has to restore.
func requireFiles(paths ...string) error {
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, strings.Join(missing, ", "))
	}
	return nil
}
