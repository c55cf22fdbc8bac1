package usecase

import (
	"context"
	"fmt"
	"math"

	"vaccineai-service/internal/domain"
)

// Cluster type names and the fixed remediation banks. Each bank is five
// actions; the moderate bank doubles as the fallback.
const (
	clusterHighRiskZeroDose = "High-Risk Zero-Dose Cluster"
	clusterAccessChallenged = "Accessibility-Challenged Cluster"
	clusterLowLiteracy      = "Low-Literacy High-Dropout Cluster"
	clusterLowRisk          = "Low-Risk Well-Served Cluster"
	clusterModerate         = "Moderate-Risk Cluster"
)

var clusterRecommendations = map[string][]string{
	clusterHighRiskZeroDose: {
		"🚨 Immediate mobile vaccination camps deployment",
		"💰 Financial incentives for vaccination completion",
		"🏥 Establish temporary vaccination centers",
		"📱 Intensive community outreach programs",
		"🎯 Door-to-door vaccination campaigns",
	},
	clusterAccessChallenged: {
		"🚐 Mobile vaccination units with extended hours",
		"🏠 Home-based vaccination services",
		"🚗 Transportation assistance programs",
		"📞 Telemedicine consultation services",
		"🗺️ Optimize vaccination center locations",
	},
	clusterLowLiteracy: {
		"📚 Educational campaigns in local languages",
		"👥 Community health worker training",
		"📺 Radio and TV awareness programs",
		"🏫 School-based vaccination programs",
		"🤝 Religious leader engagement",
	},
	clusterLowRisk: {
		"✅ Maintain current vaccination programs",
		"📊 Regular monitoring and surveillance",
		"🎓 Continue health education initiatives",
		"🏆 Recognition programs for high coverage",
		"📈 Share best practices with other areas",
	},
	clusterModerate: {
		"📋 Targeted awareness campaigns",
		"🏥 Strengthen existing health infrastructure",
		"📱 Digital appointment booking systems",
		"👨‍⚕️ Additional healthcare worker training",
		"📊 Enhanced data collection and monitoring",
	},
}

type ClusterUseCase struct {
	store domain.ArtifactStore
}

func NewClusterUseCase(store domain.ArtifactStore) *ClusterUseCase {
	return &ClusterUseCase{store: store}
}

// Profile assigns the area to a pre-computed cluster and builds its
// risk-tiered remediation plan.
func (uc *ClusterUseCase) Profile(ctx context.Context, req domain.ClusterRequest) (*domain.ClusterProfile, error) {
	bundle, err := uc.store.Cluster()
	if err != nil {
		return nil, err
	}

	features, err := buildClusterFeatures(req)
	if err != nil {
		return nil, err
	}
	scaled, err := bundle.Scaler.TransformRow(features)
	if err != nil {
		return nil, err
	}
	clusterID, err := bundle.Model.Assign(scaled)
	if err != nil {
		return nil, err
	}
	row, err := bundle.Summary.Row(clusterID)
	if err != nil {
		return nil, err
	}

	clusterType, riskLevel := classifyCluster(row)

	return &domain.ClusterProfile{
		ClusterID:            clusterID,
		ClusterType:          clusterType,
		RiskLevel:            riskLevel,
		PriorityScore:        round1(priorityScore(float64(req.ZeroDoseCount), float64(req.TravelTime), req.LiteracyRate)),
		Characteristics:      row,
		Recommendations:      clusterRecommendations[clusterType],
		InterventionPriority: interventionPriority(req),
	}, nil
}

// clusterFeatureNames mirrors the order buildClusterFeatures emits; it only
// exists to name the offending column in non-finite errors.
var clusterFeatureNames = []string{
	"Latitude",
	"Longitude",
	"Zero_Dose_Count",
	"Income_Level",
	"Travel_Time",
	"Literacy_Rate",
	"Dose_Density",
	"Accessibility_Score",
	"Priority_Score",
}

// buildClusterFeatures joins the six raw fields with the three derived
// scores in the exact order the scaler and model were fitted with:
// latitude, longitude, zero-dose count, income, travel time, literacy rate,
// dose density, accessibility score, priority score. Zero income or travel
// time makes a derived ratio non-finite; that is rejected here rather than
// handed to the model.
func buildClusterFeatures(req domain.ClusterRequest) ([]float64, error) {
	zeroDose := float64(req.ZeroDoseCount)
	income := float64(req.Income)
	travelTime := float64(req.TravelTime)

	doseDensity := zeroDose / (income / 1000)
	accessibility := req.LiteracyRate / travelTime

	features := []float64{
		req.Latitude,
		req.Longitude,
		zeroDose,
		income,
		travelTime,
		req.LiteracyRate,
		doseDensity,
		accessibility,
		priorityScore(zeroDose, travelTime, req.LiteracyRate),
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNonFiniteFeature, clusterFeatureNames[i])
		}
	}
	return features, nil
}

func priorityScore(zeroDose, travelTime, literacyRate float64) float64 {
	return zeroDose*0.4 + travelTime*0.3 + (100-literacyRate)*0.3
}

// classifyCluster types the cluster from its average metrics, first match
// wins. The querying area's own values play no part here.
func classifyCluster(row domain.ClusterSummaryRow) (clusterType, riskLevel string) {
	switch {
	case row.ZeroDoseCount > 150 && row.Income < 50000:
		return clusterHighRiskZeroDose, "Critical"
	case row.ZeroDoseCount > 100 && row.TravelTime > 60:
		return clusterAccessChallenged, "High"
	case row.LiteracyRate < 70 && row.ZeroDoseCount > 80:
		return clusterLowLiteracy, "High"
	case row.ZeroDoseCount < 50 && row.Income > 80000:
		return clusterLowRisk, "Low"
	default:
		return clusterModerate, "Medium"
	}
}

// interventionPriority tiers the area's own priority score. Thresholds are
// strict greater-than, so a score of exactly 80 is High, not Immediate.
func interventionPriority(req domain.ClusterRequest) string {
	score := priorityScore(float64(req.ZeroDoseCount), float64(req.TravelTime), req.LiteracyRate)
	switch {
	case score > 80:
		return "Immediate"
	case score > 60:
		return "High"
	case score > 40:
		return "Medium"
	default:
		return "Low"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
