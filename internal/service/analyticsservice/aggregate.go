package analyticsservice

import (
	"fmt"
	"math"
	"time"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
)

const dateLayout = "2006-01-02"

type PointsMetrics struct {
	TotalEarned   float64 `json:"total_earned"`
	TotalRedeemed float64 `json:"total_redeemed"`
}

type Report struct {
	DailySales         map[string]float64 `json:"daily_sales"`
	PointsMetrics      PointsMetrics      `json:"points_metrics"`
	UniqueCustomers    int                `json:"unique_customers"`
	CustomerActivity   map[string]int     `json:"customer_activity"`
	HourlyDistribution map[string]int     `json:"hourly_distribution"`
	AvgTransaction     float64            `json:"avg_transaction"`
}

// Metrics holds the dashboard figures for a single day.
type Metrics struct {
	TotalSales     float64 `json:"total_sales"`
	PointsIssued   float64 `json:"points_issued"`
	PointsRedeemed float64 `json:"points_redeemed"`
}

// Aggregate groups a vendor's transactions over the [from, to] window.
// Every day of the window and every hour of the day appear in the maps even
// when empty, so chart axes stay stable.
func Aggregate(transactions []domain.Transaction, from, to time.Time) *Report {
	report := &Report{
		DailySales:         make(map[string]float64),
		CustomerActivity:   make(map[string]int),
		HourlyDistribution: make(map[string]int),
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		report.DailySales[d.Format(dateLayout)] = 0
	}
	for hour := 0; hour < 24; hour++ {
		report.HourlyDistribution[fmt.Sprintf("%02d", hour)] = 0
	}

	customers := make(map[int]struct{})
	var totalAmount float64

	for _, t := range transactions {
		totalAmount += t.Amount

		date := t.Timestamp.Format(dateLayout)
		report.DailySales[date] += t.Amount
		report.CustomerActivity[date]++
		report.HourlyDistribution[t.Timestamp.Format("15")]++

		report.PointsMetrics.TotalEarned += t.PointsEarned
		report.PointsMetrics.TotalRedeemed += t.PointsRedeemed

		customers[t.CustomerID] = struct{}{}
	}

	report.UniqueCustomers = len(customers)
	report.PointsMetrics.TotalEarned = round2(report.PointsMetrics.TotalEarned)
	report.PointsMetrics.TotalRedeemed = round2(report.PointsMetrics.TotalRedeemed)

	// Average is per distinct customer, defined as 0 for an empty window.
	if len(customers) > 0 {
		report.AvgTransaction = round2(totalAmount / float64(len(customers)))
	}

	return report
}

// DashboardMetrics sums a day's transactions for the dashboard tiles.
func DashboardMetrics(transactions []domain.Transaction) Metrics {
	var m Metrics
	for _, t := range transactions {
		m.TotalSales += t.Amount
		m.PointsIssued += t.PointsEarned
		m.PointsRedeemed += t.PointsRedeemed
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
