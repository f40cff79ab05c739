package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/telkomportal/internal/services"
)

// AssistHandler fronts the chat assistant.
type AssistHandler struct {
	assist *services.AssistService
}

// NewAssistHandler constructs an AssistHandler.
func NewAssistHandler(assist *services.AssistService) *AssistHandler {
	return &AssistHandler{assist: assist}
}

type assistRequest struct {
	Message string `json:"message"`
}

// Chat answers a customer question. The generative exchange is opaque: the
// message goes in, the reply comes back, nothing else is interpreted.
func (h *AssistHandler) Chat(c *fiber.Ctx) error {
	var req assistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	reply, err := h.assist.Answer(c.UserContext(), req.Message)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "assistant is unavailable")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reply":   reply,
	})
}
