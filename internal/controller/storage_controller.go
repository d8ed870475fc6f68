package controller

import (
	"policy-assist-be/internal/dto"
	"policy-assist-be/internal/pkg/serverutils"
	"policy-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStorageController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Set(ctx *fiber.Ctx) error
}

type storageController struct {
	storageService service.IStorageService
}

func NewStorageController(storageService service.IStorageService) IStorageController {
	return &storageController{
		storageService: storageService,
	}
}

func (c *storageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/storage/v1")
	h.Get("", c.Get)
	h.Post("", c.Set)
}

func (c *storageController) Get(ctx *fiber.Ctx) error {
	key := ctx.Query("key")

	res, err := c.storageService.Get(ctx.Context(), key)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *storageController) Set(ctx *fiber.Ctx) error {
	var req dto.SetValueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.storageService.Set(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"ok": true})
}
