package scraper

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/telkomportal/internal/storage"
	"github.com/example/telkomportal/internal/store"
)

func newTestScraper(t *testing.T) (*Scraper, *store.ScrapedDataStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	users := store.NewUserStore(kv)
	data := store.NewScrapedDataStore(kv)
	return New(users, data, Delays{}), data
}

func TestLoginSuccess(t *testing.T) {
	s, _ := newTestScraper(t)

	session, err := s.Login(Credentials{Username: "john.doe@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !session.LoggedIn {
		t.Error("session should be logged in")
	}
	if !strings.HasPrefix(session.Cookie, "session_id=mock_session_") {
		t.Errorf("cookie = %q, want the mock session format", session.Cookie)
	}
	if !s.IsAuthenticated() {
		t.Error("facade should report authenticated after login")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, _ := newTestScraper(t)

	_, err := s.Login(Credentials{Username: "john.doe@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if s.IsAuthenticated() {
		t.Error("failed login must leave the session state untouched")
	}
}

func TestScrapeAllRequiresCredentials(t *testing.T) {
	s, _ := newTestScraper(t)

	cases := []Credentials{
		{},
		{Username: "john.doe@example.com"},
		{Password: "password123"},
	}
	for _, creds := range cases {
		if _, err := s.ScrapeAll(creds); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("ScrapeAll(%+v) err = %v, want ErrMissingCredentials", creds, err)
		}
	}
}

func TestScrapeAllPersistsBundle(t *testing.T) {
	s, data := newTestScraper(t)

	bundle, err := s.ScrapeAll(Credentials{
		Username: "jane.smith@example.com",
		Password: "password456",
	})
	if err != nil {
		t.Fatalf("scrapeAll: %v", err)
	}

	// Jane's plan is Mobile Data 50GB.
	if bundle.Usage.DataAllowance != 50000 {
		t.Errorf("dataAllowance = %v, want 50000", bundle.Usage.DataAllowance)
	}
	if len(bundle.Activities) != 4 {
		t.Errorf("activities = %d, want 4", len(bundle.Activities))
	}

	stored, ok := data.Get("TLK007654321")
	if !ok {
		t.Fatal("scrapeAll should persist the bundle under the account number")
	}
	if stored.Usage.DataAllowance != 50000 {
		t.Errorf("stored dataAllowance = %v, want 50000", stored.Usage.DataAllowance)
	}
}

func TestScrapeAllInvalidCredentials(t *testing.T) {
	s, _ := newTestScraper(t)

	_, err := s.ScrapeAll(Credentials{Username: "jane.smith@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshUnknownAccount(t *testing.T) {
	s, _ := newTestScraper(t)

	if _, err := s.Refresh("TLK999999999"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestRefreshIgnoresLoginState(t *testing.T) {
	s, data := newTestScraper(t)

	// No login has happened; refresh must work anyway.
	bundle, err := s.Refresh("TLK001234567")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if bundle.Usage.DataAllowance != 100000 {
		t.Errorf("dataAllowance = %v, want 100000 for the fiber plan", bundle.Usage.DataAllowance)
	}
	if _, ok := data.Get("TLK001234567"); !ok {
		t.Error("refresh should persist the regenerated bundle")
	}
	if s.IsAuthenticated() {
		t.Error("refresh must not touch the login session")
	}
}

func TestRefreshOverwritesPreviousBundle(t *testing.T) {
	s, data := newTestScraper(t)

	if _, err := s.Refresh("TLK001234567"); err != nil {
		t.Fatal(err)
	}
	first, _ := data.Get("TLK001234567")

	time.Sleep(5 * time.Millisecond)

	if _, err := s.Refresh("TLK001234567"); err != nil {
		t.Fatal(err)
	}
	second, _ := data.Get("TLK001234567")

	if !(second.LastUpdated > first.LastUpdated) {
		t.Errorf("second lastUpdated %q is not after first %q", second.LastUpdated, first.LastUpdated)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	s, _ := newTestScraper(t)

	if _, err := s.Login(Credentials{Username: "john.doe@example.com", Password: "password123"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("logout should clear the session")
	}
	if info := s.SessionInfo(); info.Cookie != "" {
		t.Errorf("cookie after logout = %q, want empty", info.Cookie)
	}
}
