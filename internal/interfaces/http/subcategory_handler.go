package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// SubCategoryHandler maneja las peticiones HTTP de subcategorías.
type SubCategoryHandler struct {
	uc *usecase.SubCategoryUseCase
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *usecase.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubCategoryRequest  true  "name, categoryId"
// @Success      201   {object}  dto.SubCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subcategories [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Param        status      query  string  false  "active o inactive"
// @Param        search      query  string  false  "Buscar en name y description"
// @Success      200  {object}  dto.SubCategoryListResponse
// @Router       /api/subcategories [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(repository.SubCategoryFilter{
		CategoryID: c.Query("categoryId"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
		OrderBy:    c.Query("orderBy"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subcategoría"
// @Param        body  body  dto.UpdateSubCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar subcategoría (los productos quedan sin subcategoría)
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la subcategoría"
// @Success      204
// @Router       /api/subcategories/{id} [delete]
func (h *SubCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
