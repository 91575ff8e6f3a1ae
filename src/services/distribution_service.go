package services

import (
	"sort"

	"tracker/src/models"
	"tracker/src/schemas"
)

var categoryColors = map[models.Category]string{
	models.CategoryStocks:      "#2563EB",
	models.CategoryBonds:       "#16A34A",
	models.CategoryRealEstate:  "#D97706",
	models.CategoryCrypto:      "#9333EA",
	models.CategoryMutualFunds: "#0D9488",
	models.CategoryOther:       "#6B7280",
}

var statusColors = map[models.HoldingStatus]string{
	models.StatusActive: "#16A34A",
	models.StatusSold:   "#6B7280",
	models.StatusOnHold: "#D97706",
}

const fallbackColor = "#9CA3AF"

// DistributionService groups holdings along a categorical dimension and
// computes value, percentage and count per group.
type DistributionService struct{}

func NewDistributionService() *DistributionService {
	return &DistributionService{}
}

// Distribution buckets holdings by category or status. Buckets are ordered by
// descending total value, ties by label. Percentages are of the grand total
// and zero when the grand total is zero.
func (s *DistributionService) Distribution(holdings []models.Holding, groupBy schemas.GroupBy) []schemas.DistributionBucket {
	type bucket struct {
		count int
		total float64
		color string
	}
	buckets := make(map[string]*bucket)
	grandTotal := 0.0

	for _, h := range holdings {
		if h.Deleted {
			continue
		}

		var label, color string
		if groupBy == schemas.GroupByStatus {
			label = h.Status.String()
			color = statusColors[h.Status]
		} else {
			label = h.Category.String()
			color = categoryColors[h.Category]
		}
		if color == "" {
			color = fallbackColor
		}

		b, ok := buckets[label]
		if !ok {
			b = &bucket{color: color}
			buckets[label] = b
		}
		b.count++
		b.total += h.CurrentValue
		grandTotal += h.CurrentValue
	}

	result := make([]schemas.DistributionBucket, 0, len(buckets))
	for label, b := range buckets {
		percentage := 0.0
		if grandTotal > 0 {
			percentage = b.total / grandTotal * 100
		}
		result = append(result, schemas.DistributionBucket{
			Label:      label,
			Count:      b.count,
			TotalValue: b.total,
			Percentage: percentage,
			Color:      b.color,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalValue != result[j].TotalValue {
			return result[i].TotalValue > result[j].TotalValue
		}
		return result[i].Label < result[j].Label
	})
	return result
}

// ActiveOnly filters to active, non-deleted holdings. Asset-allocation charts
// only consider positions still held.
func (s *DistributionService) ActiveOnly(holdings []models.Holding) []models.Holding {
	active := make([]models.Holding, 0, len(holdings))
	for _, h := range holdings {
		if !h.Deleted && h.Status == models.StatusActive {
			active = append(active, h)
		}
	}
	return active
}

// sizeRanges are the fixed monetary buckets of the size distribution. A zero
// Max marks the open-ended top bucket.
var sizeRanges = []schemas.SizeBucket{
	{Label: "< $1,000", Min: 0, Max: 1000},
	{Label: "$1,000 - $5,000", Min: 1000, Max: 5000},
	{Label: "$5,000 - $10,000", Min: 5000, Max: 10000},
	{Label: "$10,000 - $50,000", Min: 10000, Max: 50000},
	{Label: "$50,000+", Min: 50000, Max: 0},
}

// SizeDistribution counts holdings into fixed current-value ranges, ascending.
func (s *DistributionService) SizeDistribution(holdings []models.Holding) []schemas.SizeBucket {
	result := make([]schemas.SizeBucket, len(sizeRanges))
	copy(result, sizeRanges)

	for _, h := range holdings {
		if h.Deleted {
			continue
		}
		for i := range result {
			if h.CurrentValue >= result[i].Min && (result[i].Max == 0 || h.CurrentValue < result[i].Max) {
				result[i].Count++
				result[i].TotalValue += h.CurrentValue
				break
			}
		}
	}
	return result
}
