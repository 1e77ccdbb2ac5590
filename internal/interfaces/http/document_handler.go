package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/usecase"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
)

// DocumentHandler handles HTTP requests for uploaded documents (protected).
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler builds the handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload godoc
// @Summary      Upload document
// @Tags         documents
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "File to upload"
// @Param        document_name  formData  string  false  "Display name, defaults to the file name"
// @Param        project_id     formData  string  false  "Related project"
// @Param        category       formData  string  false  "Category"
// @Param        notes          formData  string  false  "Notes"
// @Success      201  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file is required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cannot read uploaded file"})
	}
	defer f.Close()

	name := c.FormValue("document_name")
	if name == "" {
		name = fileHeader.Filename
	}
	out, err := h.uc.Upload(
		c.Context(),
		name,
		c.FormValue("project_id"),
		c.FormValue("category"),
		GetUserID(c),
		c.FormValue("notes"),
		fileHeader.Filename,
		f,
	)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid document data"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get document by ID
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Document ID"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "document not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List documents
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        limit       query  int     false  "Limit"   default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Param        project_id  query  string  false  "Filter by project"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	if projectID := c.Query("project_id"); projectID != "" {
		out, err := h.uc.ListByProject(projectID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete document record
// @Tags         documents
// @Security     Bearer
// @Param        id  path  string  true  "Document ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "document not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
