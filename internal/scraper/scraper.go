// Package scraper simulates the provider-portal scraping pipeline: login,
// full scrape and refresh, each with the latency a real portal round trip would
// have. The mock Scraper is the default; LiveScraper talks to the actual site.
package scraper

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/example/telkomportal/internal/generator"
	"github.com/example/telkomportal/internal/models"
	"github.com/example/telkomportal/internal/store"
)

var (
	// ErrMissingCredentials is returned before any simulated work happens.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials covers any email/password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound covers refresh calls against unknown account numbers.
	ErrAccountNotFound = errors.New("account not found")
)

// Credentials are what the provider portal would ask for on its login form.
type Credentials struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

// Session is the explicit login state handed back by Login. Callers thread it
// through instead of sharing process-global flags, so concurrent callers cannot
// corrupt one another's login state.
type Session struct {
	LoggedIn bool   `json:"isLoggedIn"`
	Cookie   string `json:"sessionCookies"`
}

// Delays control the simulated latency of each operation.
type Delays struct {
	Login   time.Duration
	Scrape  time.Duration
	Refresh time.Duration
	Logout  time.Duration
}

// DefaultDelays mirrors the latency of a real portal round trip.
func DefaultDelays() Delays {
	return Delays{
		Login:   1000 * time.Millisecond,
		Scrape:  2000 * time.Millisecond,
		Refresh: 1500 * time.Millisecond,
		Logout:  500 * time.Millisecond,
	}
}

// Provider is the facade contract shared by the mock and live scrapers, so the
// two are interchangeable behind the HTTP layer.
type Provider interface {
	Login(creds Credentials) (*Session, error)
	ScrapeAll(creds Credentials) (models.ScrapedData, error)
	Refresh(accountNumber string) (models.ScrapedData, error)
	Logout() error
	IsAuthenticated() bool
	SessionInfo() Session
}

// Scraper is the mock provider: it validates against the local user store and
// serves generated data with artificial latency. It keeps only the most recent
// session, behind a mutex, for the diagnostics accessors.
type Scraper struct {
	users  *store.UserStore
	data   *store.ScrapedDataStore
	delays Delays

	mu      sync.Mutex
	current Session
}

// New builds a mock Scraper.
func New(users *store.UserStore, data *store.ScrapedDataStore, delays Delays) *Scraper {
	return &Scraper{users: users, data: data, delays: delays}
}

// Login simulates the portal login handshake. On success the session flips to
// authenticated and carries an opaque mock cookie; on failure the previous
// session state is left untouched.
func (s *Scraper) Login(creds Credentials) (*Session, error) {
	time.Sleep(s.delays.Login)

	if _, ok := s.users.Authenticate(creds.Username, creds.Password); !ok {
		return nil, ErrInvalidCredentials
	}

	session := Session{
		LoggedIn: true,
		Cookie:   fmt.Sprintf("session_id=mock_session_%d; path=/", time.Now().UnixMilli()),
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return &session, nil
}

// ScrapeAll runs the full pipeline: login, scrape, persist. The scrape step
// authenticates a second time to fetch the account record, exactly like the
// portal flow it emulates; credentials invalidated between the two calls fail
// the scrape even though the login succeeded.
func (s *Scraper) ScrapeAll(creds Credentials) (models.ScrapedData, error) {
	if creds.Username == "" || creds.Password == "" {
		return models.ScrapedData{}, ErrMissingCredentials
	}

	if _, err := s.Login(creds); err != nil {
		return models.ScrapedData{}, err
	}

	time.Sleep(s.delays.Scrape)

	user, ok := s.users.Authenticate(creds.Username, creds.Password)
	if !ok {
		return models.ScrapedData{}, fmt.Errorf("data scraping failed: user not found")
	}

	bundle := models.ScrapedData{
		Usage:       generator.UsageFor(user.Plan),
		Activities:  generator.Activities(),
		LastUpdated: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	if err := s.data.Save(user.AccountNumber, bundle); err != nil {
		return models.ScrapedData{}, fmt.Errorf("data scraping failed: %w", err)
	}

	return bundle, nil
}

// Refresh regenerates and persists a fresh bundle for the account. It does not
// consult the login session at all; that asymmetry with ScrapeAll is the
// documented behavior of the system, not an oversight to patch here.
func (s *Scraper) Refresh(accountNumber string) (models.ScrapedData, error) {
	user, ok := s.users.GetByAccountNumber(accountNumber)
	if !ok {
		return models.ScrapedData{}, ErrAccountNotFound
	}

	time.Sleep(s.delays.Refresh)

	// Re-check: the account may have vanished while we "waited" on the portal.
	user, ok = s.users.GetByAccountNumber(accountNumber)
	if !ok {
		return models.ScrapedData{}, ErrAccountNotFound
	}

	bundle := models.ScrapedData{
		Usage:       generator.UsageFor(user.Plan),
		Activities:  generator.Activities(),
		LastUpdated: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	if err := s.data.Save(accountNumber, bundle); err != nil {
		return models.ScrapedData{}, err
	}

	return bundle, nil
}

// Logout clears the current session. It always succeeds.
func (s *Scraper) Logout() error {
	time.Sleep(s.delays.Logout)

	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()

	return nil
}

// IsAuthenticated reports whether the most recent login is still active.
func (s *Scraper) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.LoggedIn
}

// SessionInfo exposes the current session for the status endpoint.
func (s *Scraper) SessionInfo() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
