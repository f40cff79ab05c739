package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Generator is the opaque text-in/text-out contract for the chat assistant.
// The portal never inspects or transforms model output beyond trimming it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiGenerator calls the generative-language API over plain HTTP.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiGenerator builds a GeminiGenerator for the configured model.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt and returns the first candidate's text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate payload: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generative API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("generative API: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("generative API returned status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generative API returned no candidates")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// CannedGenerator answers from keyword-matched stock replies. It backs the
// assistant when no API key is configured and keeps tests offline.
type CannedGenerator struct{}

// Generate picks a stock reply based on keywords in the prompt.
func (CannedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "fiber") || strings.Contains(lower, "fibre"):
		return "Our uncapped fiber packages start at R399/month for 10Mbps. You can check coverage for your address at telkom.co.za/coverage.", nil
	case strings.Contains(lower, "bill") || strings.Contains(lower, "payment"):
		return "Bills are due on the 25th of each month. You can pay by debit order, EFT, card or at partner stores; email billing is free.", nil
	case strings.Contains(lower, "slow") || strings.Contains(lower, "speed"):
		return "Start with a speed test at speedtest.telkom.co.za, then restart your router and check your cables. If it persists, call 081 180.", nil
	case strings.Contains(lower, "support") || strings.Contains(lower, "help"):
		return "Customer Care is available 24/7 on 10210, and Technical Support on 081 180.", nil
	default:
		return "Thanks for reaching out. You can manage your account at telkom.co.za or call Customer Care on 10210 any time.", nil
	}
}

// AssistService answers customer questions grounded in the marketing catalog.
type AssistService struct {
	generator Generator
	catalog   *CatalogService
}

// NewAssistService builds an AssistService.
func NewAssistService(generator Generator, catalog *CatalogService) *AssistService {
	return &AssistService{generator: generator, catalog: catalog}
}

// Answer wraps the customer's message in the catalog context and runs the
// generator. The response travels back verbatim.
func (s *AssistService) Answer(ctx context.Context, message string) (string, error) {
	return s.generator.Generate(ctx, s.buildPrompt(message))
}

func (s *AssistService) buildPrompt(message string) string {
	catalog := s.catalog.Get(false).Catalog

	var b strings.Builder
	b.WriteString("You are a helpful Telkom customer assistant. Current Telkom information:\n\n")

	b.WriteString("Fiber packages:\n")
	for _, pkg := range catalog.Fiber.Packages {
		fmt.Fprintf(&b, "- %s: %s, %s\n", pkg.Name, pkg.Price, pkg.Speed)
	}

	b.WriteString("\nMobile packages:\n")
	for _, pkg := range catalog.Mobile.Packages {
		fmt.Fprintf(&b, "- %s: %s, %s\n", pkg.Name, pkg.Price, pkg.Data)
	}

	b.WriteString("\nSupport contacts:\n")
	for _, contact := range catalog.Support.Contacts {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", contact.Service, contact.Number, contact.Hours)
	}

	fmt.Fprintf(&b, "\nCustomer query: %s\n\n", message)
	b.WriteString("Please provide a helpful, accurate response based on the Telkom information provided.")

	return b.String()
}
