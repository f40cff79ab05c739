package services

import (
	"sync"
	"time"
)

// Catalog structures mirror the public marketing dataset the portal serves:
// fiber and mobile packages, support channels, billing options and business
// solutions.

type FiberPackage struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Speed    string   `json:"speed"`
	Features []string `json:"features"`
}

type FiberData struct {
	Packages []FiberPackage `json:"packages"`
	Coverage []string       `json:"coverage"`
}

type MobilePackage struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Data     string   `json:"data"`
	Features []string `json:"features"`
}

type PrepaidPackage struct {
	Name     string   `json:"name"`
	Rate     string   `json:"rate"`
	Data     string   `json:"data"`
	Features []string `json:"features"`
}

type MobileData struct {
	Packages []MobilePackage  `json:"packages"`
	Prepaid  []PrepaidPackage `json:"prepaid"`
}

type SupportContact struct {
	Service     string `json:"service"`
	Number      string `json:"number"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

type TroubleshootingGuide struct {
	Issue string   `json:"issue"`
	Steps []string `json:"steps"`
}

type SupportData struct {
	Contacts        []SupportContact       `json:"contacts"`
	SelfService     []string               `json:"selfService"`
	Troubleshooting []TroubleshootingGuide `json:"troubleshooting"`
}

type BillingData struct {
	PaymentMethods []string `json:"paymentMethods"`
	BillingOptions []string `json:"billingOptions"`
	Assistance     []string `json:"assistance"`
}

type BusinessSolution struct {
	Category string   `json:"category"`
	Services []string `json:"services"`
}

type BusinessData struct {
	Solutions []BusinessSolution `json:"solutions"`
	Support   []string           `json:"support"`
}

// Catalog is the full marketing dataset with its provenance metadata.
type Catalog struct {
	LastUpdated string       `json:"lastUpdated"`
	Source      string       `json:"source"`
	IsStale     bool         `json:"isStale"`
	Fiber       FiberData    `json:"fiber"`
	Mobile      MobileData   `json:"mobile"`
	Support     SupportData  `json:"support"`
	Billing     BillingData  `json:"billing"`
	Business    BusinessData `json:"business"`
}

// CatalogService serves the dataset from an in-process cache. The compiled-in
// data stands in for a live pull; a real pull would slot into fetch.
type CatalogService struct {
	ttl time.Duration

	mu        sync.RWMutex
	cached    *Catalog
	fetchedAt time.Time
}

// NewCatalogService builds a CatalogService with the given cache lifetime.
func NewCatalogService(ttl time.Duration) *CatalogService {
	return &CatalogService{ttl: ttl}
}

// CatalogResult pairs the dataset with cache metadata for the response envelope.
type CatalogResult struct {
	Catalog     Catalog
	Cached      bool
	CacheAge    time.Duration
	NextRefresh time.Time
}

// Get returns the catalog, refreshing the cache when it expired or when the
// caller forces a refresh.
func (s *CatalogService) Get(force bool) CatalogResult {
	s.mu.RLock()
	if s.cached != nil && !force && time.Since(s.fetchedAt) < s.ttl {
		result := CatalogResult{
			Catalog:     *s.cached,
			Cached:      true,
			CacheAge:    time.Since(s.fetchedAt),
			NextRefresh: s.fetchedAt.Add(s.ttl),
		}
		s.mu.RUnlock()
		return result
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have refreshed while we waited for the write lock.
	if s.cached != nil && !force && time.Since(s.fetchedAt) < s.ttl {
		return CatalogResult{
			Catalog:     *s.cached,
			Cached:      true,
			CacheAge:    time.Since(s.fetchedAt),
			NextRefresh: s.fetchedAt.Add(s.ttl),
		}
	}

	fresh := s.fetch()
	s.cached = &fresh
	s.fetchedAt = time.Now()

	return CatalogResult{
		Catalog:     fresh,
		Cached:      false,
		NextRefresh: s.fetchedAt.Add(s.ttl),
	}
}

func (s *CatalogService) fetch() Catalog {
	catalog := baseCatalog
	catalog.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	catalog.Source = "live"
	catalog.IsStale = false
	return catalog
}
