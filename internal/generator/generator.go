// Package generator produces the plausible usage figures and activity feeds the
// mock provider serves in place of real scraped data.
package generator

import (
	"math/rand"
	"time"

	"github.com/example/telkomportal/internal/models"
)

type planConfig struct {
	dataAllowance   float64
	connectionSpeed float64
	currentBill     float64
}

// Allowances are megabytes, bills are rand amounts.
var planConfigs = map[string]planConfig{
	"Fiber Premium 100Mbps": {dataAllowance: 100000, connectionSpeed: 100, currentBill: 299.00},
	"Mobile Data 50GB":      {dataAllowance: 50000, connectionSpeed: 50, currentBill: 199.00},
}

var defaultPlan = planConfig{dataAllowance: 10000, connectionSpeed: 20, currentBill: 99.00}

// UsageFor builds a usage snapshot for the given plan. Unknown plans fall back to
// the default tier. Usage is drawn uniformly below 80% of the allowance, so
// generated accounts never model overage, and the bill is always due on the 25th
// of the next calendar month.
func UsageFor(plan string) models.UsageData {
	cfg, ok := planConfigs[plan]
	if !ok {
		cfg = defaultPlan
	}

	return models.UsageData{
		DataUsed:        float64(rand.Int63n(int64(cfg.dataAllowance * 0.8))),
		DataAllowance:   cfg.dataAllowance,
		CurrentBill:     cfg.currentBill,
		BillDueDate:     nextBillDueDate(time.Now()),
		ConnectionSpeed: cfg.connectionSpeed,
		PlanStatus:      models.PlanStatusActive,
	}
}

// Activities returns the fixed four-entry feed. Content and order are constant;
// only the absolute timestamps shift with the call time.
func Activities() []models.Activity {
	now := time.Now().UTC()
	stamp := func(age time.Duration) string {
		return now.Add(-age).Format("2006-01-02T15:04:05.000Z07:00")
	}

	return []models.Activity{
		{
			ID:          "1",
			Type:        models.ActivityData,
			Description: "Data usage spike detected",
			Timestamp:   stamp(2 * time.Hour),
			Value:       "2.3 GB",
		},
		{
			ID:          "2",
			Type:        models.ActivityCall,
			Description: "Voice call - Premium rate",
			Timestamp:   stamp(5 * time.Hour),
			Value:       "45 min",
		},
		{
			ID:          "3",
			Type:        models.ActivityPayment,
			Description: "Bill payment received",
			Timestamp:   stamp(24 * time.Hour),
			Value:       "R299",
		},
		{
			ID:          "4",
			Type:        models.ActivitySystem,
			Description: "Plan upgraded successfully",
			Timestamp:   stamp(3 * 24 * time.Hour),
			Value:       "Premium",
		},
	}
}

func nextBillDueDate(from time.Time) string {
	due := time.Date(from.Year(), from.Month()+1, 25, 0, 0, 0, 0, time.UTC)
	return due.Format("2006-01-02")
}
