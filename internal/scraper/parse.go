package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/example/telkomportal/internal/models"
)

var (
	dataValueRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(GB|MB|KB)`)
	currencyRe  = regexp.MustCompile(`R?\s*(\d+(?:\.\d+)?)`)
	speedRe     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*Mbps`)
	numberRe    = regexp.MustCompile(`(\d+)`)
)

// ParseUsage extracts a usage snapshot from a provider dashboard page. Missing
// fields parse to zero; the caller decides whether a partial snapshot is usable.
func ParseUsage(doc *goquery.Document) models.UsageData {
	return models.UsageData{
		DataUsed:        parseDataValue(doc.Find(".data-usage-used").Text()),
		DataAllowance:   parseDataValue(doc.Find(".data-usage-total").Text()),
		CurrentBill:     parseCurrencyValue(doc.Find(".current-bill-amount").Text()),
		ConnectionSpeed: parseSpeedValue(doc.Find(".connection-speed").Text()),
		PlanStatus:      models.PlanStatusActive,
	}
}

// ParseActivities extracts the activity feed from a provider history page.
func ParseActivities(doc *goquery.Document) []models.Activity {
	var activities []models.Activity
	doc.Find(".activity-item").Each(func(i int, sel *goquery.Selection) {
		id, ok := sel.Attr("data-id")
		if !ok || id == "" {
			id = "activity_" + strconv.Itoa(i)
		}
		activities = append(activities, models.Activity{
			ID:          id,
			Type:        parseActivityType(sel.Find(".activity-type").Text()),
			Description: strings.TrimSpace(sel.Find(".activity-description").Text()),
			Timestamp:   parseRelativeTimestamp(sel.Find(".activity-time").Text(), time.Now()),
			Value:       strings.TrimSpace(sel.Find(".activity-value").Text()),
		})
	})
	return activities
}

// parseDataValue converts strings like "2.3 GB" or "512 MB" to megabytes.
func parseDataValue(text string) float64 {
	match := dataValueRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}

	switch strings.ToUpper(match[2]) {
	case "GB":
		return value * 1024
	case "KB":
		return value / 1024
	default:
		return value
	}
}

// parseCurrencyValue reads amounts like "R299" or "R 1499.50".
func parseCurrencyValue(text string) float64 {
	match := currencyRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return value
}

func parseSpeedValue(text string) float64 {
	match := speedRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return value
}

func parseActivityType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "data") || strings.Contains(lower, "usage"):
		return models.ActivityData
	case strings.Contains(lower, "call") || strings.Contains(lower, "voice"):
		return models.ActivityCall
	case strings.Contains(lower, "payment") || strings.Contains(lower, "bill"):
		return models.ActivityPayment
	default:
		return models.ActivitySystem
	}
}

// parseRelativeTimestamp resolves phrases like "2 hours ago" or "1 day ago"
// against the reference time. Unrecognized phrases resolve to the reference
// itself, matching how the portal renders entries with no visible age.
func parseRelativeTimestamp(text string, ref time.Time) string {
	lower := strings.ToLower(text)
	n := 0
	if match := numberRe.FindStringSubmatch(lower); match != nil {
		n, _ = strconv.Atoi(match[1])
	}

	switch {
	case strings.Contains(lower, "hour"):
		ref = ref.Add(-time.Duration(n) * time.Hour)
	case strings.Contains(lower, "day"):
		ref = ref.AddDate(0, 0, -n)
	case strings.Contains(lower, "minute"):
		ref = ref.Add(-time.Duration(n) * time.Minute)
	}

	return ref.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
