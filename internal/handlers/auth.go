package handlers

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/example/telkomportal/internal/config"
	"github.com/example/telkomportal/internal/middleware"
	"github.com/example/telkomportal/internal/models"
	"github.com/example/telkomportal/internal/session"
	"github.com/example/telkomportal/internal/store"
	"github.com/example/telkomportal/internal/utils"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthHandler bundles dependencies for the portal's own auth endpoints.
type AuthHandler struct {
	users    *store.UserStore
	sessions *session.Registry
	cfg      *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *store.UserStore, sessions *session.Registry, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, cfg: cfg}
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Register creates a new customer account and opens a session for it. The
// duplicate-email check lives here, at the registration boundary; the store
// itself accepts whatever it is given.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.FirstName == "" || req.LastName == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}
	if !emailRe.MatchString(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "email is invalid")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	if _, exists := h.users.GetByEmail(req.Email); exists {
		return fiber.NewError(fiber.StatusConflict, "email already exists")
	}

	user := h.users.Create(store.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})

	token, err := h.openSession(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing customer and opens a session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	user, ok := h.users.Authenticate(req.Email, req.Password)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.openSession(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// Session returns the current session's user and start time.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sc, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no active session")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"user":         sc.Entry.User,
		"sessionStart": sc.Entry.StartedAt,
	})
}

type profileUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// UpdateProfile edits the session-local copy of the user. The durable store is
// left untouched: edits last exactly as long as the session does.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	sc, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no active session")
	}

	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user := sc.Entry.User
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if !h.sessions.Update(sc.ID, user) {
		return fiber.NewError(fiber.StatusUnauthorized, "session expired")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Logout closes the current session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sc, ok := middleware.GetCurrentSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no active session")
	}

	h.sessions.Close(sc.ID)

	return c.JSON(fiber.Map{
		"success": true,
	})
}

func (h *AuthHandler) openSession(user models.User) (string, error) {
	sessionID := h.sessions.Open(user)
	return utils.GenerateToken(h.cfg.JWTSecret, sessionID, h.cfg.TokenExpires)
}
