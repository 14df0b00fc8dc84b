package controller

import (
	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/pkg/serverutils"
	"nexum-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPurchaseController interface {
	RegisterRoutes(r fiber.Router)
	CreateRequest(ctx *fiber.Ctx) error
	ListRequests(ctx *fiber.Ctx) error
	DecideRequest(ctx *fiber.Ctx) error
	ListOrders(ctx *fiber.Ctx) error
}

type purchaseController struct {
	purchaseService service.IPurchaseService
}

func NewPurchaseController(purchaseService service.IPurchaseService) IPurchaseController {
	return &purchaseController{
		purchaseService: purchaseService,
	}
}

func (c *purchaseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/purchase/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("requests", c.CreateRequest)
	h.Get("requests", c.ListRequests)
	h.Put("requests/:id/decision", c.DecideRequest)
	h.Get("orders", c.ListOrders)
}

func (c *purchaseController) CreateRequest(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePurchaseRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.CreateRequest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create purchase request", res))
}

func (c *purchaseController) ListRequests(ctx *fiber.Ctx) error {
	var req dto.ListPurchaseRequestsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.purchaseService.ListRequests(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list purchase requests", res))
}

func (c *purchaseController) DecideRequest(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.DecideRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.DecideRequest(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success decide purchase request", res))
}

func (c *purchaseController) ListOrders(ctx *fiber.Ctx) error {
	var req dto.ListPurchaseOrdersRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.purchaseService.ListOrders(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list purchase orders", res))
}
