package schemas

// DashboardSummary feeds the summary cards at the top of the dashboard.
type DashboardSummary struct {
	TotalValue         float64        `json:"totalValue"`
	TotalInvested      float64        `json:"totalInvested"`
	TotalGainLoss      float64        `json:"totalGainLoss"`
	GainLossPercentage float64        `json:"gainLossPercentage"`
	HoldingCount       int            `json:"holdingCount"`
	ActiveCount        int            `json:"activeCount"`
	TransactionCount   int            `json:"transactionCount"`
	TopGainer          *RankedHolding `json:"topGainer,omitempty"`
	TopLoser           *RankedHolding `json:"topLoser,omitempty"`
	LastActivity       string         `json:"lastActivity,omitempty"`
}

// ChartPoint is one labeled value of a dashboard chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points consumed by the frontend charts.
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// PerformanceChart is the dashboard trend payload: portfolio value and growth
// per period.
type PerformanceChart struct {
	ValueSeries  ChartSeries `json:"valueSeries"`
	GrowthSeries ChartSeries `json:"growthSeries"`
}

// AssetAllocation is the pie-chart payload of active holdings by category.
type AssetAllocation struct {
	TotalValue float64              `json:"totalValue"`
	Slices     []DistributionBucket `json:"slices"`
}
