package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vaccineai-service/internal/domain"
	"vaccineai-service/internal/testutil"
)

func clusterRequest() domain.ClusterRequest {
	return domain.ClusterRequest{
		AreaID:        "AR-104",
		CityName:      "Aurangabad",
		DistrictName:  "Aurangabad",
		Latitude:      19.8762,
		Longitude:     75.3433,
		ZeroDoseCount: 200,
		Income:        30000,
		TravelTime:    45,
		LiteracyRate:  65.0,
	}
}

func TestClusterProfile_FeatureVector(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	model := new(testutil.MockClusterModel)
	uc := NewClusterUseCase(store)

	summary := domain.ClusterSummary{{Cluster: 1, ZeroDoseCount: 60, Income: 60000, TravelTime: 30, LiteracyRate: 80, PriorityScore: 45, CityNames: "Aurangabad, Solapur"}}
	store.On("Cluster").Return(&domain.ClusterBundle{Scaler: identityScaler(9), Model: model, Summary: summary}, nil)

	var features []float64
	model.On("Assign", mock.Anything).Run(func(args mock.Arguments) {
		features = args.Get(0).([]float64)
	}).Return(1, nil)

	_, err := uc.Profile(context.Background(), clusterRequest())
	assert.NoError(t, err)

	assert.Len(t, features, 9)
	assert.Equal(t, 19.8762, features[0])
	assert.Equal(t, 75.3433, features[1])
	assert.Equal(t, 200.0, features[2])
	assert.Equal(t, 30000.0, features[3])
	assert.Equal(t, 45.0, features[4])
	assert.Equal(t, 65.0, features[5])
	assert.InDelta(t, 200.0/30.0, features[6], 1e-9) // dose density
	assert.InDelta(t, 65.0/45.0, features[7], 1e-9)  // accessibility score
	assert.InDelta(t, 104.0, features[8], 1e-9)      // priority score
}

func TestClusterProfile_DecisionPayload(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	model := new(testutil.MockClusterModel)
	uc := NewClusterUseCase(store)

	summary := domain.ClusterSummary{{
		Cluster: 2, ZeroDoseCount: 180.04, Income: 32000, TravelTime: 55, LiteracyRate: 62, PriorityScore: 99.96,
		CityNames: "Nanded, Latur",
	}}
	store.On("Cluster").Return(&domain.ClusterBundle{Scaler: identityScaler(9), Model: model, Summary: summary}, nil)
	model.On("Assign", mock.Anything).Return(2, nil)

	profile, err := uc.Profile(context.Background(), clusterRequest())
	assert.NoError(t, err)
	assert.Equal(t, 2, profile.ClusterID)
	assert.Equal(t, "High-Risk Zero-Dose Cluster", profile.ClusterType)
	assert.Equal(t, "Critical", profile.RiskLevel)
	assert.Equal(t, 104.0, profile.PriorityScore) // 200*0.4 + 45*0.3 + 35*0.3
	assert.Equal(t, "Immediate", profile.InterventionPriority)
	assert.Len(t, profile.Recommendations, 5)
	assert.Equal(t, "🚨 Immediate mobile vaccination camps deployment", profile.Recommendations[0])
	assert.Equal(t, "Nanded, Latur", profile.Characteristics.CityNames)
}

// Zero income or travel time blows up a derived ratio; the request is
// rejected before anything reaches the model.
func TestClusterProfile_NonFiniteFeature(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ClusterRequest)
	}{
		{"zero income", func(r *domain.ClusterRequest) { r.Income = 0 }},
		{"zero travel time", func(r *domain.ClusterRequest) { r.TravelTime = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(testutil.MockArtifactStore)
			model := new(testutil.MockClusterModel)
			uc := NewClusterUseCase(store)
			store.On("Cluster").Return(&domain.ClusterBundle{Scaler: identityScaler(9), Model: model, Summary: domain.ClusterSummary{{Cluster: 0}}}, nil)

			req := clusterRequest()
			tt.mutate(&req)

			_, err := uc.Profile(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrNonFiniteFeature)
			model.AssertNotCalled(t, "Assign", mock.Anything)
		})
	}
}

func TestClusterProfile_UnknownClusterID(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	model := new(testutil.MockClusterModel)
	uc := NewClusterUseCase(store)

	summary := domain.ClusterSummary{{Cluster: 0}}
	store.On("Cluster").Return(&domain.ClusterBundle{Scaler: identityScaler(9), Model: model, Summary: summary}, nil)
	model.On("Assign", mock.Anything).Return(7, nil)

	_, err := uc.Profile(context.Background(), clusterRequest())
	assert.ErrorIs(t, err, domain.ErrClusterNotInSummary)
}

func TestClassifyCluster_RulePriority(t *testing.T) {
	tests := []struct {
		name string
		row  domain.ClusterSummaryRow
		typ  string
		risk string
	}{
		{
			"high risk zero dose",
			domain.ClusterSummaryRow{ZeroDoseCount: 151, Income: 49999, TravelTime: 30, LiteracyRate: 80},
			"High-Risk Zero-Dose Cluster", "Critical",
		},
		{
			// Satisfies both rule 1 and rule 2; rule 1 wins.
			"first match wins",
			domain.ClusterSummaryRow{ZeroDoseCount: 200, Income: 40000, TravelTime: 90, LiteracyRate: 80},
			"High-Risk Zero-Dose Cluster", "Critical",
		},
		{
			"accessibility challenged",
			domain.ClusterSummaryRow{ZeroDoseCount: 101, Income: 60000, TravelTime: 61, LiteracyRate: 80},
			"Accessibility-Challenged Cluster", "High",
		},
		{
			"low literacy high dropout",
			domain.ClusterSummaryRow{ZeroDoseCount: 81, Income: 60000, TravelTime: 50, LiteracyRate: 69},
			"Low-Literacy High-Dropout Cluster", "High",
		},
		{
			"low risk well served",
			domain.ClusterSummaryRow{ZeroDoseCount: 49, Income: 80001, TravelTime: 20, LiteracyRate: 95},
			"Low-Risk Well-Served Cluster", "Low",
		},
		{
			"moderate fallback",
			domain.ClusterSummaryRow{ZeroDoseCount: 70, Income: 60000, TravelTime: 40, LiteracyRate: 75},
			"Moderate-Risk Cluster", "Medium",
		},
		{
			// Boundary values miss every strict comparison.
			"boundaries are strict",
			domain.ClusterSummaryRow{ZeroDoseCount: 150, Income: 50000, TravelTime: 60, LiteracyRate: 70},
			"Moderate-Risk Cluster", "Medium",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, risk := classifyCluster(tt.row)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.risk, risk)
		})
	}
}

// Cluster typing depends only on the summary row: the same cluster id yields
// the same type and risk no matter what the querying area looks like.
func TestClusterProfile_TypeIndependentOfRequest(t *testing.T) {
	summary := domain.ClusterSummary{{Cluster: 3, ZeroDoseCount: 30, Income: 90000, TravelTime: 15, LiteracyRate: 95, PriorityScore: 20}}

	for _, req := range []domain.ClusterRequest{
		clusterRequest(),
		{AreaID: "AR-1", CityName: "X", DistrictName: "Y", ZeroDoseCount: 500, Income: 1000, TravelTime: 120, LiteracyRate: 10},
	} {
		store := new(testutil.MockArtifactStore)
		model := new(testutil.MockClusterModel)
		uc := NewClusterUseCase(store)
		store.On("Cluster").Return(&domain.ClusterBundle{Scaler: identityScaler(9), Model: model, Summary: summary}, nil)
		model.On("Assign", mock.Anything).Return(3, nil)

		profile, err := uc.Profile(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, "Low-Risk Well-Served Cluster", profile.ClusterType)
		assert.Equal(t, "Low", profile.RiskLevel)
	}
}

func TestInterventionPriority_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ClusterRequest
		want string
	}{
		// 0.4*200 + 0.3*0 + 0.3*(100-100) = 80 exactly: strictly-greater, so High.
		{"exactly 80 is high", domain.ClusterRequest{ZeroDoseCount: 200, TravelTime: 0, LiteracyRate: 100}, "High"},
		{"above 80 is immediate", domain.ClusterRequest{ZeroDoseCount: 200, TravelTime: 45, LiteracyRate: 65}, "Immediate"},
		// 0.4*150 = 60 exactly.
		{"exactly 60 is medium", domain.ClusterRequest{ZeroDoseCount: 150, TravelTime: 0, LiteracyRate: 100}, "Medium"},
		// 0.4*100 = 40 exactly.
		{"exactly 40 is low", domain.ClusterRequest{ZeroDoseCount: 100, TravelTime: 0, LiteracyRate: 100}, "Low"},
		{"small score is low", domain.ClusterRequest{ZeroDoseCount: 10, TravelTime: 10, LiteracyRate: 95}, "Low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interventionPriority(tt.req))
		})
	}
}

func TestClusterRecommendations_FixedBanks(t *testing.T) {
	for typ, recs := range clusterRecommendations {
		assert.Len(t, recs, 5, typ)
	}
}
