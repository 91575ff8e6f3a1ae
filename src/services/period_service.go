package services

import (
	"time"

	"tracker/src/models"
	"tracker/src/schemas"
	"tracker/src/utils"
)

const (
	MinMonthPeriods = 1
	MaxMonthPeriods = 36
	MaxYearPeriods  = 50
)

// PeriodService slices a date range into calendar periods and values the
// portfolio at each boundary.
type PeriodService struct {
	valuation *ValuationService
}

func NewPeriodService(valuation *ValuationService) *PeriodService {
	return &PeriodService{valuation: valuation}
}

// PeriodSeries produces count trailing periods ending at the period containing
// asOf, oldest first. A year granularity with count <= 0 spans from the
// earliest purchase year to the year of asOf.
func (s *PeriodService) PeriodSeries(holdings []models.Holding, txsByHolding map[string][]models.Transaction, granularity schemas.Granularity, count int, asOf time.Time) []schemas.PeriodSummary {
	count = s.boundCount(holdings, granularity, count, asOf)

	summaries := make([]schemas.PeriodSummary, 0, count)
	for i := count - 1; i >= 0; i-- {
		start, end, label := s.periodBounds(granularity, i, asOf)

		startValue := s.valuation.PortfolioValueAt(holdings, txsByHolding, start.AddDate(0, 0, -1)).Value
		endValue := s.valuation.PortfolioValueAt(holdings, txsByHolding, end).Value
		growth := endValue - startValue

		growthPercentage := 0.0
		if startValue > 0 {
			growthPercentage = growth / startValue * 100
		}

		txCount, txTotal := s.transactionStats(txsByHolding, start, end)

		summaries = append(summaries, schemas.PeriodSummary{
			Label:            label,
			PeriodStart:      start,
			PeriodEnd:        end,
			StartValue:       startValue,
			EndValue:         endValue,
			Growth:           growth,
			GrowthPercentage: growthPercentage,
			TransactionCount: txCount,
			TransactionTotal: txTotal,
		})
	}
	return summaries
}

// PeriodReport wraps the series with its derived summary values.
func (s *PeriodService) PeriodReport(holdings []models.Holding, txsByHolding map[string][]models.Transaction, granularity schemas.Granularity, count int, asOf time.Time) *schemas.PeriodReport {
	periods := s.PeriodSeries(holdings, txsByHolding, granularity, count, asOf)

	report := &schemas.PeriodReport{
		Granularity: granularity.String(),
		Periods:     periods,
	}
	if len(periods) == 0 {
		return report
	}

	best, worst := 0, 0
	var totalGrowth float64
	for i, p := range periods {
		totalGrowth += p.Growth
		if p.GrowthPercentage > periods[best].GrowthPercentage {
			best = i
		}
		if p.GrowthPercentage < periods[worst].GrowthPercentage {
			worst = i
		}
	}

	bestCopy, worstCopy := periods[best], periods[worst]
	report.BestPeriod = &bestCopy
	report.WorstPeriod = &worstCopy
	report.AverageGrowth = totalGrowth / float64(len(periods))
	return report
}

func (s *PeriodService) boundCount(holdings []models.Holding, granularity schemas.Granularity, count int, asOf time.Time) int {
	if granularity == schemas.GranularityMonth {
		if count < MinMonthPeriods {
			return MinMonthPeriods
		}
		if count > MaxMonthPeriods {
			return MaxMonthPeriods
		}
		return count
	}

	if count <= 0 {
		earliest := asOf
		for _, h := range holdings {
			if h.PurchaseDate.Before(earliest) {
				earliest = h.PurchaseDate
			}
		}
		count = asOf.Year() - earliest.Year() + 1
	}
	if count > MaxYearPeriods {
		return MaxYearPeriods
	}
	if count < 1 {
		return 1
	}
	return count
}

func (s *PeriodService) periodBounds(granularity schemas.Granularity, periodsAgo int, asOf time.Time) (start, end time.Time, label string) {
	if granularity == schemas.GranularityMonth {
		start = utils.MonthStart(asOf).AddDate(0, -periodsAgo, 0)
		end = utils.MonthEnd(start)
		label = start.Format("Jan 2006")
		return
	}
	start = utils.YearStart(asOf).AddDate(-periodsAgo, 0, 0)
	end = utils.YearEnd(start)
	label = start.Format("2006")
	return
}

func (s *PeriodService) transactionStats(txsByHolding map[string][]models.Transaction, start, end time.Time) (int, float64) {
	startDay, endDay := utils.TruncateToDay(start), utils.TruncateToDay(end)
	count := 0
	total := 0.0
	for _, transactions := range txsByHolding {
		for _, t := range transactions {
			day := utils.TruncateToDay(t.Date)
			if day.Before(startDay) || day.After(endDay) {
				continue
			}
			count++
			total += t.Amount
		}
	}
	return count, total
}
