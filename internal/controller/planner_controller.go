package controller

import (
	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/pkg/serverutils"
	"nexum-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlannerController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type plannerController struct {
	plannerService service.IPlannerService
}

func NewPlannerController(plannerService service.IPlannerService) IPlannerController {
	return &plannerController{
		plannerService: plannerService,
	}
}

func (c *plannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/planner/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("generate", c.Generate)
	h.Get("history", c.History)
}

func (c *plannerController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.plannerService.GeneratePlan(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate purchase plan", res))
}

func (c *plannerController) History(ctx *fiber.Ctx) error {
	var req dto.ListPlansRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.plannerService.History(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list plan history", res))
}
