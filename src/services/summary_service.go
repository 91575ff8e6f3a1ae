package services

import (
	"time"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/utils"
)

// SummaryService assembles engine outputs into the payload shapes consumed by
// the dashboard and report views. It only selects, rounds and formats; every
// number originates in the valuation, period, performance or distribution
// services.
type SummaryService struct {
	valuation    *ValuationService
	periods      *PeriodService
	performance  *PerformanceService
	distribution *DistributionService
}

func NewSummaryService(valuation *ValuationService, periods *PeriodService, performance *PerformanceService, distribution *DistributionService) *SummaryService {
	return &SummaryService{
		valuation:    valuation,
		periods:      periods,
		performance:  performance,
		distribution: distribution,
	}
}

// DashboardSummary builds the card payload. Empty inputs produce an all-zero
// summary, never an error.
func (s *SummaryService) DashboardSummary(holdings []models.Holding, txsByHolding map[string][]models.Transaction, recentActivity []models.ActivityLog, asOf time.Time) *schemas.DashboardSummary {
	summary := &schemas.DashboardSummary{}

	transactionCount := 0
	for _, h := range holdings {
		summary.TotalValue += h.CurrentValue
		summary.TotalInvested += h.InitialAmount
		if h.Status == models.StatusActive {
			summary.ActiveCount++
		}
		transactionCount += len(txsByHolding[h.ID])
	}
	summary.HoldingCount = len(holdings)
	summary.TransactionCount = transactionCount
	summary.TotalGainLoss = summary.TotalValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.GainLossPercentage = summary.TotalGainLoss / summary.TotalInvested * 100
	}

	if gainers := s.performance.Rank(holdings, schemas.RankByPercentage, schemas.RankTop, 1, asOf); len(gainers) > 0 {
		top := roundRanked(gainers[0])
		summary.TopGainer = &top
	}
	if losers := s.performance.Rank(holdings, schemas.RankByPercentage, schemas.RankWorst, 1, asOf); len(losers) > 0 {
		worst := roundRanked(losers[0])
		summary.TopLoser = &worst
	}
	if len(recentActivity) > 0 {
		summary.LastActivity = utils.TimeAgo(recentActivity[0].CreatedAt, asOf)
	}

	summary.TotalValue = utils.RoundCurrency(summary.TotalValue)
	summary.TotalInvested = utils.RoundCurrency(summary.TotalInvested)
	summary.TotalGainLoss = utils.RoundCurrency(summary.TotalGainLoss)
	summary.GainLossPercentage = utils.RoundCurrency(summary.GainLossPercentage)
	return summary
}

// PerformanceChart builds the dashboard trend series over trailing months.
func (s *SummaryService) PerformanceChart(holdings []models.Holding, txsByHolding map[string][]models.Transaction, months int, asOf time.Time) *schemas.PerformanceChart {
	periods := s.periods.PeriodSeries(holdings, txsByHolding, schemas.GranularityMonth, months, asOf)

	chart := &schemas.PerformanceChart{
		ValueSeries:  schemas.ChartSeries{Name: "Portfolio Value", Points: make([]schemas.ChartPoint, 0, len(periods))},
		GrowthSeries: schemas.ChartSeries{Name: "Growth %", Points: make([]schemas.ChartPoint, 0, len(periods))},
	}
	for _, p := range periods {
		chart.ValueSeries.Points = append(chart.ValueSeries.Points, schemas.ChartPoint{
			Label: p.Label,
			Value: utils.RoundCurrency(p.EndValue),
		})
		chart.GrowthSeries.Points = append(chart.GrowthSeries.Points, schemas.ChartPoint{
			Label: p.Label,
			Value: utils.RoundCurrency(p.GrowthPercentage),
		})
	}
	return chart
}

// Allocation builds the asset-allocation pie payload from active holdings.
func (s *SummaryService) Allocation(holdings []models.Holding) *schemas.AssetAllocation {
	active := s.distribution.ActiveOnly(holdings)
	slices := s.distribution.Distribution(active, schemas.GroupByCategory)

	allocation := &schemas.AssetAllocation{Slices: make([]schemas.DistributionBucket, 0, len(slices))}
	for _, slice := range slices {
		allocation.TotalValue += slice.TotalValue
		slice.TotalValue = utils.RoundCurrency(slice.TotalValue)
		slice.Percentage = utils.RoundCurrency(slice.Percentage)
		allocation.Slices = append(allocation.Slices, slice)
	}
	allocation.TotalValue = utils.RoundCurrency(allocation.TotalValue)
	return allocation
}

// ReportDocument bundles every report section into one export-ready payload.
func (s *SummaryService) ReportDocument(userID string, holdings []models.Holding, txsByHolding map[string][]models.Transaction, granularity schemas.Granularity, periodCount int, asOf time.Time) *schemas.ReportDocument {
	doc := &schemas.ReportDocument{
		GeneratedAt:  asOf,
		UserID:       userID,
		Summary:      s.DashboardSummary(holdings, txsByHolding, nil, asOf),
		Periods:      s.periods.PeriodReport(holdings, txsByHolding, granularity, periodCount, asOf),
		TopHoldings:  s.performance.Rank(holdings, schemas.RankByCurrentValue, schemas.RankTop, 10, asOf),
		Categories:   s.performance.CategoryPerformance(holdings, asOf),
		Distribution: s.distribution.Distribution(holdings, schemas.GroupByCategory),
		SizeBuckets:  s.distribution.SizeDistribution(holdings),
	}

	doc.Holdings = make([]schemas.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		doc.Holdings = append(doc.Holdings, *schemas.NewHoldingResponse(&holdings[i]))
	}

	for i := range doc.TopHoldings {
		doc.TopHoldings[i] = roundRanked(doc.TopHoldings[i])
	}
	return doc
}

func roundRanked(r schemas.RankedHolding) schemas.RankedHolding {
	r.InitialAmount = utils.RoundCurrency(r.InitialAmount)
	r.CurrentValue = utils.RoundCurrency(r.CurrentValue)
	r.GainLoss = utils.RoundCurrency(r.GainLoss)
	r.GainLossPercentage = utils.RoundCurrency(r.GainLossPercentage)
	r.AnnualizedReturn = utils.RoundCurrency(r.AnnualizedReturn)
	return r
}
