package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/importer"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// LeadHandler maneja el ciclo de vida del lead: CRUD, conversión e importación.
type LeadHandler struct {
	uc       *crm.LeadUseCase
	importUC *importer.ImportUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *crm.LeadUseCase, importUC *importer.ImportUseCase) *LeadHandler {
	return &LeadHandler{uc: uc, importUC: importUC}
}

// Create godoc
// @Summary      Crear lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "name, phone, area"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lead por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lead"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "lead no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar leads
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Estado del lead"
// @Param        area      query  string  false  "Zona"
// @Param        priority  query  string  false  "low, medium, high"
// @Param        source    query  string  false  "Origen"
// @Param        salesRep  query  string  false  "Vendedor asignado"
// @Param        fromDate  query  string  false  "created_at desde (YYYY-MM-DD)"
// @Param        toDate    query  string  false  "created_at hasta (YYYY-MM-DD)"
// @Param        search    query  string  false  "Buscar en name, phone, email y notes"
// @Success      200  {object}  dto.LeadListResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "query inválida"})
	}
	page.DefaultPage()
	fromDate, err := queryDate(c, "fromDate")
	if err != nil {
		return errorJSON(c, err)
	}
	toDate, err := queryDate(c, "toDate")
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.uc.List(repository.LeadFilter{
		Status:   c.Query("status"),
		Area:     c.Query("area"),
		Priority: c.Query("priority"),
		Source:   c.Query("source"),
		SalesRep: c.Query("salesRep"),
		FromDate: fromDate,
		ToDate:   toDate,
		Search:   c.Query("search"),
		OrderBy:  c.Query("orderBy"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LeadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "lead no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lead
// @Tags         leads
// @Security     Bearer
// @Param        id  path  string  true  "ID del lead"
// @Success      204
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Convert godoc
// @Summary      Convertir lead en cliente
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.ConvertLeadRequest  true  "installationDate, warrantyYears"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/convert [post]
func (h *LeadHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Convert(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Upload godoc
// @Summary      Importar leads desde xlsx
// @Tags         leads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo xlsx"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads/upload [post]
func (h *LeadHandler) Upload(c *fiber.Ctx) error {
	return handleUpload(c, h.importUC, entity.OwnerLead)
}

// handleUpload abre el archivo del form y corre la importación del kind dado.
func handleUpload(c *fiber.Ctx, uc *importer.ImportUseCase, kind entity.OwnerKind) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "archivo requerido (campo file)"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	out, err := uc.Import(c.Context(), kind, f)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
