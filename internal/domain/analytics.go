package domain

type PlatformStats struct {
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`
	Count       int `json:"count"`
}

type ProjectAnalytics struct {
	TotalImpressions  int                      `json:"totalImpressions"`
	TotalClicks       int                      `json:"totalClicks"`
	AvgEngagement     float64                  `json:"avgEngagement"`
	ClickThroughRate  float64                  `json:"clickThroughRate"`
	PlatformBreakdown map[string]PlatformStats `json:"platformBreakdown"`
	TopPerforming     []*AdVariation           `json:"topPerforming"`
}
