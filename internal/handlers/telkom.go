package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/telkomportal/internal/scraper"
	"github.com/example/telkomportal/internal/store"
)

// PortalHandler serves the action-multiplexed provider-portal endpoint.
type PortalHandler struct {
	users    *store.UserStore
	data     *store.ScrapedDataStore
	provider scraper.Provider
}

// NewPortalHandler constructs a PortalHandler.
func NewPortalHandler(users *store.UserStore, data *store.ScrapedDataStore, provider scraper.Provider) *PortalHandler {
	return &PortalHandler{users: users, data: data, provider: provider}
}

type portalRequest struct {
	Action        string `json:"action"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
}

// Handle dispatches POST /api/telkom on the action field.
func (h *PortalHandler) Handle(c *fiber.Ctx) error {
	var req portalRequest
	if err := c.BodyParser(&req); err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	switch req.Action {
	case "login":
		return h.handleLogin(c, req)
	case "scrape":
		return h.handleScrape(c, req)
	case "refresh":
		return h.handleRefresh(c, req)
	case "getUserData":
		return h.handleGetUserData(c, req)
	default:
		return failure(c, fiber.StatusBadRequest, "Invalid action")
	}
}

func (h *PortalHandler) handleLogin(c *fiber.Ctx, req portalRequest) error {
	if req.Email == "" || req.Password == "" {
		return failure(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, ok := h.users.Authenticate(req.Email, req.Password)
	if !ok {
		return failure(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (h *PortalHandler) handleScrape(c *fiber.Ctx, req portalRequest) error {
	if req.Username == "" || req.Password == "" {
		return failure(c, fiber.StatusBadRequest, "Username and password are required")
	}

	bundle, err := h.provider.ScrapeAll(scraper.Credentials{
		Username:      req.Username,
		Password:      req.Password,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		return failure(c, fiber.StatusBadRequest, scrapeErrorMessage(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bundle,
	})
}

func (h *PortalHandler) handleRefresh(c *fiber.Ctx, req portalRequest) error {
	if req.AccountNumber == "" {
		return failure(c, fiber.StatusBadRequest, "Account number is required")
	}

	bundle, err := h.provider.Refresh(req.AccountNumber)
	if err != nil {
		return failure(c, fiber.StatusBadRequest, scrapeErrorMessage(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bundle,
	})
}

func (h *PortalHandler) handleGetUserData(c *fiber.Ctx, req portalRequest) error {
	if req.AccountNumber == "" {
		return failure(c, fiber.StatusBadRequest, "Account number is required")
	}

	user, ok := h.users.GetByAccountNumber(req.AccountNumber)
	if !ok {
		return failure(c, fiber.StatusNotFound, "User not found")
	}

	response := fiber.Map{
		"success": true,
		"user":    user,
	}
	if bundle, ok := h.data.Get(req.AccountNumber); ok {
		response["data"] = bundle
	} else {
		response["data"] = nil
	}

	return c.JSON(response)
}

// Status serves GET /api/telkom?action=status&accountNumber=... with the user,
// the latest bundle and the scraper's session diagnostics. Any other GET shape
// is rejected.
func (h *PortalHandler) Status(c *fiber.Ctx) error {
	action := c.Query("action")
	accountNumber := c.Query("accountNumber")

	if action != "status" || accountNumber == "" {
		return failure(c, fiber.StatusBadRequest, "Invalid request")
	}

	response := fiber.Map{
		"success": true,
		"scraperStatus": fiber.Map{
			"isAuthenticated": h.provider.IsAuthenticated(),
			"sessionInfo":     h.provider.SessionInfo(),
		},
	}

	if user, ok := h.users.GetByAccountNumber(accountNumber); ok {
		response["user"] = user
	} else {
		response["user"] = nil
	}
	if bundle, ok := h.data.Get(accountNumber); ok {
		response["data"] = bundle
	} else {
		response["data"] = nil
	}

	return c.JSON(response)
}

// scrapeErrorMessage maps facade errors to their user-facing wording.
func scrapeErrorMessage(err error) string {
	switch {
	case errors.Is(err, scraper.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, scraper.ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, scraper.ErrMissingCredentials):
		return "Username and password are required"
	default:
		return err.Error()
	}
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
