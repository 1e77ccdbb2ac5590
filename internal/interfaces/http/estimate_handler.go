package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cooltechhq/hvac-ops-api/internal/application/billing"
	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
)

// EstimateHandler handles HTTP requests for estimates.
type EstimateHandler struct {
	uc    *billing.EstimateUseCase
	pdfUC *billing.PDFUseCase
}

// NewEstimateHandler builds the handler.
func NewEstimateHandler(uc *billing.EstimateUseCase, pdfUC *billing.PDFUseCase) *EstimateHandler {
	return &EstimateHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Create estimate
// @Tags         estimates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstimateRequest  true  "Estimate data"
// @Success      201   {object}  dto.EstimateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estimates [post]
func (h *EstimateHandler) Create(c *fiber.Ctx) error {
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid estimate data"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get estimate by ID
// @Tags         estimates
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Estimate ID"
// @Success      200  {object}  dto.EstimateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estimates/{id} [get]
func (h *EstimateHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estimate not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List estimates
// @Tags         estimates
// @Security     Bearer
// @Produce      json
// @Param        limit       query  int     false  "Limit"   default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Param        project_id  query  string  false  "Filter by project"
// @Success      200  {array}  dto.EstimateResponse
// @Router       /api/estimates [get]
func (h *EstimateHandler) List(c *fiber.Ctx) error {
	if projectID := c.Query("project_id"); projectID != "" {
		out, err := h.uc.ListByProject(c.Context(), projectID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update estimate
// @Tags         estimates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Estimate ID"
// @Param        body  body  dto.EstimateRequest  true  "Estimate data"
// @Success      200   {object}  dto.EstimateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estimates/{id} [put]
func (h *EstimateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estimate not found"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid estimate data"})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "status change not allowed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Send godoc
// @Summary      Send estimate to the client
// @Tags         estimates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Estimate ID"
// @Param        body  body  dto.SendRequest  true  "method (email|sms) and optional recipient override"
// @Success      200   {object}  dto.EstimateResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estimates/{id}/send [post]
func (h *EstimateHandler) Send(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.SendRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Send(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estimate not found"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "method must be email or sms, and a recipient must be known"})
		}
		if err == domain.ErrAlreadyResponded {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RESPONDED", Message: "estimate was already approved or declined"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Download estimate PDF
// @Tags         estimates
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Estimate ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estimates/{id}/pdf [get]
func (h *EstimateHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	data, filename, err := h.pdfUC.EstimatePDF(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estimate not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Respond godoc
// @Summary      Approve or decline an estimate via signed link
// @Description  Public endpoint hit from the email/SMS buttons. Approving
// @Description  creates the invoice; a second click is rejected.
// @Tags         public
// @Produce      json
// @Param        id      query  string  true  "Estimate ID"
// @Param        action  query  string  true  "approve or decline"
// @Param        token   query  string  true  "Signed action token"
// @Success      200  {object}  dto.RespondResult
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/public/estimate-response [get]
func (h *EstimateHandler) Respond(c *fiber.Ctx) error {
	id := c.Query("id")
	action := c.Query("action")
	token := c.Query("token")
	if id == "" || action == "" || token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id, action and token are required"})
	}
	out, err := h.uc.Respond(c.Context(), id, action, token)
	if err != nil {
		if err == domain.ErrInvalidToken {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "link is not valid"})
		}
		if err == domain.ErrTokenExpired {
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "LINK_EXPIRED", Message: "this link has expired; ask for a new estimate"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estimate not found"})
		}
		if err == domain.ErrAlreadyResponded {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RESPONDED", Message: "this estimate has already been answered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
