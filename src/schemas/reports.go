package schemas

import (
	"fmt"
	"time"
)

// Granularity selects the calendar bucket used by period aggregation.
type Granularity int

const (
	GranularityMonth Granularity = iota
	GranularityYear
)

func (g Granularity) String() string {
	if g == GranularityYear {
		return "Year"
	}
	return "Month"
}

func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "Month", "month", "monthly":
		return GranularityMonth, nil
	case "Year", "year", "yearly":
		return GranularityYear, nil
	default:
		return GranularityMonth, fmt.Errorf("unknown granularity %q", s)
	}
}

// RankDimension selects the metric a performance ranking is ordered by.
type RankDimension int

const (
	RankByPercentage RankDimension = iota
	RankByAbsoluteGain
	RankByCurrentValue
)

func ParseRankDimension(s string) (RankDimension, error) {
	switch s {
	case "Percentage", "percentage":
		return RankByPercentage, nil
	case "AbsoluteGain", "absoluteGain", "gain":
		return RankByAbsoluteGain, nil
	case "CurrentValue", "currentValue", "value":
		return RankByCurrentValue, nil
	default:
		return RankByPercentage, fmt.Errorf("unknown rank dimension %q", s)
	}
}

// RankDirection selects top performers (descending) or worst (ascending).
type RankDirection int

const (
	RankTop RankDirection = iota
	RankWorst
)

func ParseRankDirection(s string) (RankDirection, error) {
	switch s {
	case "Top", "top", "":
		return RankTop, nil
	case "Worst", "worst", "bottom":
		return RankWorst, nil
	default:
		return RankTop, fmt.Errorf("unknown rank direction %q", s)
	}
}

// GroupBy selects the categorical dimension for distribution breakdowns.
type GroupBy int

const (
	GroupByCategory GroupBy = iota
	GroupByStatus
)

func ParseGroupBy(s string) (GroupBy, error) {
	switch s {
	case "Category", "category", "":
		return GroupByCategory, nil
	case "Status", "status":
		return GroupByStatus, nil
	default:
		return GroupByCategory, fmt.Errorf("unknown groupBy %q", s)
	}
}

// PeriodSummary is one calendar bucket of the trend series.
type PeriodSummary struct {
	Label            string    `json:"label"`
	PeriodStart      time.Time `json:"periodStart"`
	PeriodEnd        time.Time `json:"periodEnd"`
	StartValue       float64   `json:"startValue"`
	EndValue         float64   `json:"endValue"`
	Growth           float64   `json:"growth"`
	GrowthPercentage float64   `json:"growthPercentage"`
	TransactionCount int       `json:"transactionCount"`
	TransactionTotal float64   `json:"transactionTotal"`
}

// PeriodReport is the full trend series plus its derived summary values.
type PeriodReport struct {
	Granularity   string          `json:"granularity"`
	Periods       []PeriodSummary `json:"periods"`
	BestPeriod    *PeriodSummary  `json:"bestPeriod,omitempty"`
	WorstPeriod   *PeriodSummary  `json:"worstPeriod,omitempty"`
	AverageGrowth float64         `json:"averageGrowth"`
}

// RankedHolding is one row of a top-N / worst-N performance view.
type RankedHolding struct {
	Rank               int     `json:"rank"`
	HoldingID          string  `json:"holdingId"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	InitialAmount      float64 `json:"initialAmount"`
	CurrentValue       float64 `json:"currentValue"`
	GainLoss           float64 `json:"gainLoss"`
	GainLossPercentage float64 `json:"gainLossPercentage"`
	DaysHeld           int     `json:"daysHeld"`
	AnnualizedReturn   float64 `json:"annualizedReturn"`
}

// CategoryPerformance summarizes gain/loss percentages within one category.
type CategoryPerformance struct {
	Category          string  `json:"category"`
	Count             int     `json:"count"`
	AveragePercentage float64 `json:"averagePercentage"`
	BestPercentage    float64 `json:"bestPercentage"`
	WorstPercentage   float64 `json:"worstPercentage"`
}

// DistributionBucket is one group of a categorical value breakdown.
type DistributionBucket struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// SizeBucket is one fixed monetary range of the size distribution.
type SizeBucket struct {
	Label      string  `json:"label"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// ReportDocument bundles everything an exporter needs to serialize a report
// without re-deriving any numbers.
type ReportDocument struct {
	GeneratedAt  time.Time             `json:"generatedAt"`
	UserID       string                `json:"userId"`
	Summary      *DashboardSummary     `json:"summary"`
	Periods      *PeriodReport         `json:"periods"`
	TopHoldings  []RankedHolding       `json:"topHoldings"`
	Categories   []CategoryPerformance `json:"categories"`
	Distribution []DistributionBucket  `json:"distribution"`
	SizeBuckets  []SizeBucket          `json:"sizeBuckets"`
	Holdings     []HoldingResponse     `json:"holdings"`
}
