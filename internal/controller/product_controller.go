package controller

import (
	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/pkg/serverutils"
	"nexum-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	StatusSummary(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	Suggestions(ctx *fiber.Ctx) error
}

type productController struct {
	productService    service.IProductService
	suggestionService service.ISuggestionService
}

func NewProductController(productService service.IProductService, suggestionService service.ISuggestionService) IProductController {
	return &productController{
		productService:    productService,
		suggestionService: suggestionService,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/product/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("summary", c.StatusSummary)
	h.Get("suggestions", c.Suggestions)
	h.Post("import", c.Import)
	h.Get("", c.List)
	h.Get(":code", c.Show)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	var req dto.ListProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.productService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	res, err := c.productService.Show(ctx.Context(), code)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) StatusSummary(ctx *fiber.Ctx) error {
	res, err := c.productService.StatusSummary(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get status summary", res))
}

func (c *productController) Import(ctx *fiber.Ctx) error {
	var req dto.ImportProductsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Import(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import products", res))
}

func (c *productController) Suggestions(ctx *fiber.Ctx) error {
	res, err := c.suggestionService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list suggestions", res))
}
