package controller

import (
	"policy-assist-be/internal/dto"
	"policy-assist-be/internal/pkg/serverutils"
	"policy-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Post("", c.SendChat)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// Input errors are rejected here, not inside the engine.
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	caller := service.Caller{
		Identity:   serverutils.CallerIdentity(ctx),
		RemoteAddr: ctx.IP(),
	}

	res, err := c.chatService.SendChat(ctx.Context(), caller, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}
