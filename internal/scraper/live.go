package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/example/telkomportal/internal/models"
	"github.com/example/telkomportal/internal/store"
)

const (
	loginPath     = "/today/shop/account/login"
	dashboardPath = "/today/my-telkom"
	usagePath     = "/today/my-telkom/usage"
)

// LiveScraper implements Provider against the real provider website. It shares
// the facade contract with the mock Scraper so the HTTP layer cannot tell the
// two apart. Selectors live in parse.go and track the current site markup.
type LiveScraper struct {
	baseURL string
	client  *http.Client
	data    *store.ScrapedDataStore

	mu      sync.Mutex
	current Session
}

// NewLive builds a LiveScraper for the given portal base URL.
func NewLive(baseURL string, data *store.ScrapedDataStore) *LiveScraper {
	return &LiveScraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		data:    data,
	}
}

// Login submits the portal login form and keeps the returned session cookie.
func (s *LiveScraper) Login(creds Credentials) (*Session, error) {
	form := url.Values{
		"username": {creds.Username},
		"password": {creds.Password},
	}

	resp, err := s.client.PostForm(s.baseURL+loginPath, form)
	if err != nil {
		return nil, fmt.Errorf("portal login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("portal login returned status %d", resp.StatusCode)
	}

	session := Session{
		LoggedIn: true,
		Cookie:   resp.Header.Get("Set-Cookie"),
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return &session, nil
}

// ScrapeAll logs in, pulls the dashboard and usage pages and persists the
// extracted bundle under the supplied account number.
func (s *LiveScraper) ScrapeAll(creds Credentials) (models.ScrapedData, error) {
	if creds.Username == "" || creds.Password == "" {
		return models.ScrapedData{}, ErrMissingCredentials
	}

	session, err := s.Login(creds)
	if err != nil {
		return models.ScrapedData{}, err
	}

	usageDoc, err := s.fetch(usagePath, session)
	if err != nil {
		return models.ScrapedData{}, err
	}
	dashboardDoc, err := s.fetch(dashboardPath, session)
	if err != nil {
		return models.ScrapedData{}, err
	}

	bundle := models.ScrapedData{
		Usage:       ParseUsage(usageDoc),
		Activities:  ParseActivities(dashboardDoc),
		LastUpdated: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	if creds.AccountNumber == "" {
		return models.ScrapedData{}, fmt.Errorf("account number is required for live scraping")
	}
	if err := s.data.Save(creds.AccountNumber, bundle); err != nil {
		return models.ScrapedData{}, err
	}

	return bundle, nil
}

// Refresh re-pulls the usage page for an account using the current session.
func (s *LiveScraper) Refresh(accountNumber string) (models.ScrapedData, error) {
	s.mu.Lock()
	session := s.current
	s.mu.Unlock()

	if !session.LoggedIn {
		return models.ScrapedData{}, fmt.Errorf("not logged in to the provider portal")
	}

	usageDoc, err := s.fetch(usagePath, &session)
	if err != nil {
		return models.ScrapedData{}, err
	}
	dashboardDoc, err := s.fetch(dashboardPath, &session)
	if err != nil {
		return models.ScrapedData{}, err
	}

	bundle := models.ScrapedData{
		Usage:       ParseUsage(usageDoc),
		Activities:  ParseActivities(dashboardDoc),
		LastUpdated: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	if err := s.data.Save(accountNumber, bundle); err != nil {
		return models.ScrapedData{}, err
	}

	return bundle, nil
}

// Logout drops the stored session. The portal side times out on its own.
func (s *LiveScraper) Logout() error {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether a live session cookie is held.
func (s *LiveScraper) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.LoggedIn
}

// SessionInfo exposes the live session for the status endpoint.
func (s *LiveScraper) SessionInfo() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *LiveScraper) fetch(path string, session *Session) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if session.Cookie != "" {
		req.Header.Set("Cookie", session.Cookie)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal fetch %s returned status %d", path, resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
