package controller

import (
	"policy-assist-be/internal/dto"
	"policy-assist-be/internal/pkg/serverutils"
	"policy-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReadController interface {
	RegisterRoutes(r fiber.Router)
	ReadPage(ctx *fiber.Ctx) error
}

type readController struct {
	readService service.IReadService
}

func NewReadController(readService service.IReadService) IReadController {
	return &readController{
		readService: readService,
	}
}

func (c *readController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/read/v1")
	h.Post("", c.ReadPage)
}

func (c *readController) ReadPage(ctx *fiber.Ctx) error {
	var req dto.ReadPageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.readService.ReadPage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
