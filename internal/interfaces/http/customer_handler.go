package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/importer"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CustomerHandler maneja el CRUD de clientes y su importación masiva.
type CustomerHandler struct {
	uc       *crm.CustomerUseCase
	importUC *importer.ImportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *crm.CustomerUseCase, importUC *importer.ImportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, importUC: importUC}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "name, phone, area, address, installationDate"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
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
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "active o inactive"
// @Param        area      query  string  false  "Zona"
// @Param        salesRep  query  string  false  "Vendedor asignado"
// @Param        fromDate  query  string  false  "created_at desde (YYYY-MM-DD)"
// @Param        toDate    query  string  false  "created_at hasta (YYYY-MM-DD)"
// @Param        search    query  string  false  "Buscar en name, phone, email y notes"
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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
	out, err := h.uc.List(repository.CustomerFilter{
		Status:   c.Query("status"),
		Area:     c.Query("area"),
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
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Security     Bearer
// @Param        id  path  string  true  "ID del cliente"
// @Success      204
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Upload godoc
// @Summary      Importar clientes desde xlsx
// @Tags         customers
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo xlsx"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers/upload [post]
func (h *CustomerHandler) Upload(c *fiber.Ctx) error {
	return handleUpload(c, h.importUC, entity.OwnerCustomer)
}
