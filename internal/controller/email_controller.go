package controller

import (
	"policy-assist-be/internal/dto"
	"policy-assist-be/internal/pkg/mailer"
	"policy-assist-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IEmailController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

type emailController struct {
	emailService mailer.IEmailService
}

func NewEmailController(emailService mailer.IEmailService) IEmailController {
	return &emailController{
		emailService: emailService,
	}
}

func (c *emailController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/email/v1")
	h.Post("", c.Send)
}

func (c *emailController) Send(ctx *fiber.Ctx) error {
	var req dto.SendEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.emailService.Send(req.To, req.Subject, req.Html); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to send email")
	}

	return ctx.JSON(fiber.Map{"ok": true})
}
