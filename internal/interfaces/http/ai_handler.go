package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/usecase"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
)

// AIHandler exposes the task suggestion assistant (protected).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler builds the handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestTasks godoc
// @Summary      Suggest tasks for a project
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true   "Project ID"
// @Param        body  body  dto.SuggestTasksRequest  false  "Free-form notes about the job"
// @Success      200   {array}  dto.TaskSuggestion
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/suggest-tasks [post]
func (h *AIHandler) SuggestTasks(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.SuggestTasksRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
		}
	}
	in.ProjectID = id
	out, err := h.uc.SuggestTasks(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "project id is required"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
