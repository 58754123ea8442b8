package controller

import (
	"strconv"

	"rental-asistente-be/internal/dto"
	"rental-asistente-be/internal/pkg/serverutils"
	"rental-asistente-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetCatalog(ctx *fiber.Ctx) error
	CreateService(ctx *fiber.Ctx) error
	CreateServiceItem(ctx *fiber.Ctx) error
	UpdateServiceItem(ctx *fiber.Ctx) error
	DeleteServiceItem(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalogo/v1")
	h.Get("", c.GetCatalog) // public: the assistant offers it to anonymous users too

	w := h.Group("")
	w.Use(serverutils.JwtMiddleware)
	w.Post("servicio", c.CreateService)
	w.Post("item", c.CreateServiceItem)
	w.Put("item/:id", c.UpdateServiceItem)
	w.Delete("item/:id", c.DeleteServiceItem)
}

func (c *catalogController) GetCatalog(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetCatalog(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog", res))
}

func (c *catalogController) CreateService(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateService(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create service", res))
}

func (c *catalogController) CreateServiceItem(ctx *fiber.Ctx) error {
	var req dto.CreateServiceItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateServiceItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create service item", res))
}

func (c *catalogController) UpdateServiceItem(ctx *fiber.Ctx) error {
	id, err := parseItemId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateServiceItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateServiceItem(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update service item", res))
}

func (c *catalogController) DeleteServiceItem(ctx *fiber.Ctx) error {
	id, err := parseItemId(ctx)
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteServiceItem(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete service item", struct{}{}))
}

func parseItemId(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}
	return uint(id), nil
}
