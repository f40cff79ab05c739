package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGeminiGenerator(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "  Fiber starts at R399.  "}}}},
			},
		})
	}))
	defer server.Close()

	g := NewGeminiGenerator("test-key", "gemini-2.0-flash-exp")
	g.baseURL = server.URL

	reply, err := g.Generate(context.Background(), "how much is fiber?")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if reply != "Fiber starts at R399." {
		t.Errorf("reply = %q, want trimmed candidate text", reply)
	}
	if !strings.Contains(gotPath, "gemini-2.0-flash-exp:generateContent") {
		t.Errorf("path = %q, want the model's generateContent endpoint", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "how much is fiber?" {
		t.Errorf("request body = %+v", gotBody)
	}
}

func TestGeminiGeneratorErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "API key not valid"},
		})
	}))
	defer server.Close()

	g := NewGeminiGenerator("bad-key", "gemini-2.0-flash-exp")
	g.baseURL = server.URL

	_, err := g.Generate(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("err = %v, want the upstream error message", err)
	}
}

func TestAssistPromptCarriesCatalogContext(t *testing.T) {
	catalog := NewCatalogService(time.Hour)
	assist := NewAssistService(CannedGenerator{}, catalog)

	prompt := assist.buildPrompt("Which mobile plan has the most data?")

	for _, want := range []string{
		"Uncapped 10Mbps",
		"FreeMe 5GB",
		"Customer Care: 10210",
		"Customer query: Which mobile plan has the most data?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCatalogCacheExpiry(t *testing.T) {
	catalog := NewCatalogService(10 * time.Millisecond)

	first := catalog.Get(false)
	if first.Cached {
		t.Error("first fetch should not be cached")
	}
	if !catalog.Get(false).Cached {
		t.Error("immediate re-read should hit the cache")
	}

	time.Sleep(15 * time.Millisecond)
	if catalog.Get(false).Cached {
		t.Error("read after the TTL should refresh")
	}

	if catalog.Get(true).Cached {
		t.Error("forced refresh should never be served from cache")
	}
}
