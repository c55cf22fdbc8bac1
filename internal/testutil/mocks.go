package testutil

import (
	"github.com/stretchr/testify/mock"

	"vaccineai-service/internal/domain"
)

// MockArtifactStore is a mock of domain.ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Forecast(key domain.Combination) (*domain.ForecastBundle, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastBundle), args.Error(1)
}

func (m *MockArtifactStore) Dropout() (*domain.DropoutBundle, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DropoutBundle), args.Error(1)
}

func (m *MockArtifactStore) Cluster() (*domain.ClusterBundle, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClusterBundle), args.Error(1)
}

// MockSequenceModel is a mock of domain.SequenceModel.
type MockSequenceModel struct {
	mock.Mock
}

func (m *MockSequenceModel) Predict(window [][]float64) (float64, error) {
	args := m.Called(window)
	return args.Get(0).(float64), args.Error(1)
}

// MockClassifier is a mock of domain.Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(features []float64) (int, []float64, error) {
	args := m.Called(features)
	if args.Get(1) == nil {
		return args.Int(0), nil, args.Error(2)
	}
	return args.Int(0), args.Get(1).([]float64), args.Error(2)
}

// MockClusterModel is a mock of domain.ClusterModel.
type MockClusterModel struct {
	mock.Mock
}

func (m *MockClusterModel) Assign(features []float64) (int, error) {
	args := m.Called(features)
	return args.Int(0), args.Error(1)
}
