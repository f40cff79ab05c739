package models

// Plan status values reported in usage snapshots.
const (
	PlanStatusActive    = "active"
	PlanStatusSuspended = "suspended"
	PlanStatusExpired   = "expired"
)

// Activity types shown in the account activity feed.
const (
	ActivityData    = "data"
	ActivityCall    = "call"
	ActivityPayment = "payment"
	ActivitySystem  = "system"
)

// UsageData is a point-in-time snapshot of an account's usage and billing figures.
// Data volumes are megabytes, speed is Mbps.
type UsageData struct {
	DataUsed        float64 `json:"dataUsed"`
	DataAllowance   float64 `json:"dataAllowance"`
	CurrentBill     float64 `json:"currentBill"`
	BillDueDate     string  `json:"billDueDate"`
	ConnectionSpeed float64 `json:"connectionSpeed"`
	PlanStatus      string  `json:"planStatus"`
}

// Activity is a single entry in the account activity feed. Value is a display
// string, not a number: entries mix units like "2.3 GB", "45 min" and "R299".
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Value       string `json:"value"`
}

// ScrapedData bundles everything pulled for one account in a single pass. Bundles
// are replaced whole on every scrape or refresh, never merged.
type ScrapedData struct {
	Usage       UsageData  `json:"usage"`
	Activities  []Activity `json:"activities"`
	LastUpdated string     `json:"lastUpdated"`
}
