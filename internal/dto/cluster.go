package dto

import (
	"math"

	"vaccineai-service/internal/domain"
)

type ClusterRequest struct {
	AreaID        string  `json:"area_id" binding:"required"`
	CityName      string  `json:"city_name" binding:"required"`
	DistrictName  string  `json:"district_name" binding:"required"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ZeroDoseCount int     `json:"zero_dose_count"`
	Income        int     `json:"income"`
	TravelTime    int     `json:"travel_time"`
	LiteracyRate  float64 `json:"literacy_rate"`
}

func (r ClusterRequest) ToDomain() domain.ClusterRequest {
	return domain.ClusterRequest{
		AreaID:        r.AreaID,
		CityName:      r.CityName,
		DistrictName:  r.DistrictName,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		ZeroDoseCount: r.ZeroDoseCount,
		Income:        r.Income,
		TravelTime:    r.TravelTime,
		LiteracyRate:  r.LiteracyRate,
	}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AreaInfo struct {
	AreaID       string      `json:"area_id"`
	CityName     string      `json:"city_name"`
	DistrictName string      `json:"district_name"`
	Coordinates  Coordinates `json:"coordinates"`
}

type CurrentMetrics struct {
	ZeroDoseCount int     `json:"zero_dose_count"`
	Income        int     `json:"income"`
	TravelTime    int     `json:"travel_time"`
	LiteracyRate  float64 `json:"literacy_rate"`
	PriorityScore float64 `json:"priority_score"`
}

type ClusterCharacteristics struct {
	AvgZeroDose      float64 `json:"avg_zero_dose"`
	AvgIncome        float64 `json:"avg_income"`
	AvgTravelTime    float64 `json:"avg_travel_time"`
	AvgLiteracy      float64 `json:"avg_literacy"`
	AvgPriorityScore float64 `json:"avg_priority_score"`
	SimilarAreas     string  `json:"similar_areas"`
}

type ClusterResponse struct {
	ClusterID              int                    `json:"cluster_id"`
	ClusterType            string                 `json:"cluster_type"`
	RiskLevel              string                 `json:"risk_level"`
	AreaInfo               AreaInfo               `json:"area_info"`
	CurrentMetrics         CurrentMetrics         `json:"current_metrics"`
	ClusterCharacteristics ClusterCharacteristics `json:"cluster_characteristics"`
	Recommendations        []string               `json:"recommendations"`
	InterventionPriority   string                 `json:"intervention_priority"`
}

func ToClusterResponse(req ClusterRequest, profile *domain.ClusterProfile) ClusterResponse {
	return ClusterResponse{
		ClusterID:   profile.ClusterID,
		ClusterType: profile.ClusterType,
		RiskLevel:   profile.RiskLevel,
		AreaInfo: AreaInfo{
			AreaID:       req.AreaID,
			CityName:     req.CityName,
			DistrictName: req.DistrictName,
			Coordinates:  Coordinates{Latitude: req.Latitude, Longitude: req.Longitude},
		},
		CurrentMetrics: CurrentMetrics{
			ZeroDoseCount: req.ZeroDoseCount,
			Income:        req.Income,
			TravelTime:    req.TravelTime,
			LiteracyRate:  req.LiteracyRate,
			PriorityScore: profile.PriorityScore,
		},
		ClusterCharacteristics: ClusterCharacteristics{
			AvgZeroDose:      round1(profile.Characteristics.ZeroDoseCount),
			AvgIncome:        round1(profile.Characteristics.Income),
			AvgTravelTime:    round1(profile.Characteristics.TravelTime),
			AvgLiteracy:      round1(profile.Characteristics.LiteracyRate),
			AvgPriorityScore: round1(profile.Characteristics.PriorityScore),
			SimilarAreas:     profile.Characteristics.CityNames,
		},
		Recommendations:      profile.Recommendations,
		InterventionPriority: profile.InterventionPriority,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
