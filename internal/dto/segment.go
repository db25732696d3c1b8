package dto

import "cdms/internal/models"

// StatsResponse reports the region aggregates
type StatsResponse struct {
	State           string `json:"state"`
	TotalCustomers  int64  `json:"total_customers"`
	AveragePurchase string `json:"average_purchase"`
}

func NewStatsResponse(stats *models.RegionStats) *StatsResponse {
	return &StatsResponse{
		State:           stats.State,
		TotalCustomers:  stats.Count,
		AveragePurchase: stats.AveragePurchase.StringFixed(2),
	}
}

// SegmentResponse lists the value segment of every customer in a region
type SegmentResponse struct {
	State    string                  `json:"state"`
	Strategy string                  `json:"strategy"`
	Segments []*models.SegmentResult `json:"segments"`
}
