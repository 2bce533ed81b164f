package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"

	"ai-devicechat-be/internal/dto"
	"ai-devicechat-be/internal/pkg/logger"
	"ai-devicechat-be/internal/pkg/serverutils"
	"ai-devicechat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	log     logger.ILogger
}

func NewChatController(service service.IChatService, log logger.ILogger) IChatController {
	return &chatController{service: service, log: log}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/health", c.Health)
}

// Chat streams the filtered model response as NDJSON. The 200 status is
// committed as soon as streaming starts; anything that goes wrong after
// that is reported as an {"error": ...} line inside the stream.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message must not be empty"})
	}
	if err := serverutils.ValidateRequest(req); err != nil || strings.TrimSpace(req.Message) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message must not be empty"})
	}

	// The stream writer runs after this handler returns, so everything
	// it needs is captured now; the fiber context must not be touched
	// from inside the closure.
	message := req.Message
	relayCtx, cancel := context.WithCancel(context.Background())

	ctx.Set(fiber.HeaderContentType, "application/x-ndjson")
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		enc := json.NewEncoder(w)
		err := c.service.Relay(relayCtx, message, func(chunk dto.StreamChunk) error {
			if err := enc.Encode(chunk); err != nil {
				return err
			}
			// Flush per line so each fragment reaches the client as soon
			// as it is produced.
			if err := w.Flush(); err != nil {
				// Client disconnected; abort the upstream call promptly.
				cancel()
				return err
			}
			return nil
		})
		if err != nil {
			c.log.Info("ChatController", "Relay ended early, client likely disconnected", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}))

	return nil
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
