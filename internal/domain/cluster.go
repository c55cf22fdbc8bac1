package domain

import "fmt"

// ClusterRequest carries one area's location, demographic and access metrics.
type ClusterRequest struct {
	AreaID        string
	CityName      string
	DistrictName  string
	Latitude      float64
	Longitude     float64
	ZeroDoseCount int
	Income        int
	TravelTime    int
	LiteracyRate  float64
}

// ClusterSummaryRow holds one cluster's averaged metrics, precomputed by the
// offline clustering run.
type ClusterSummaryRow struct {
	Cluster       int
	ZeroDoseCount float64
	Income        float64
	TravelTime    float64
	LiteracyRate  float64
	PriorityScore float64
	CityNames     string
}

// ClusterSummary is the per-cluster lookup table keyed by cluster id.
type ClusterSummary []ClusterSummaryRow

func (s ClusterSummary) Row(id int) (ClusterSummaryRow, error) {
	for _, row := range s {
		if row.Cluster == id {
			return row, nil
		}
	}
	return ClusterSummaryRow{}, fmt.Errorf("%w: %d", ErrClusterNotInSummary, id)
}

// ClusterProfile is the full remediation payload for one profiled area.
// PriorityScore is the area's own score (one decimal); Characteristics are
// the assigned cluster's averages, which alone determine type and risk.
type ClusterProfile struct {
	ClusterID            int
	ClusterType          string
	RiskLevel            string
	PriorityScore        float64
	Characteristics      ClusterSummaryRow
	Recommendations      []string
	InterventionPriority string
}

// ClusterModel assigns the nearest cluster id to a scaled feature vector.
type ClusterModel interface {
	Assign(features []float64) (int, error)
}
