package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Resource agrupa endpoints bajo una misma regla de acceso.
type Resource string

// Recursos protegidos por el control de acceso.
const (
	ResourceUsers     Resource = "users"
	ResourceCatalog   Resource = "catalog"
	ResourceLeads     Resource = "leads"
	ResourceCustomers Resource = "customers"
)

type access int

const (
	accessNone access = iota
	accessRead
	accessWrite
)

// permissions tabla estática (rol, recurso) -> nivel. Un rol ausente o un
// recurso ausente equivalen a accessNone.
var permissions = map[string]map[Resource]access{
	entity.RoleAdmin: {
		ResourceUsers:     accessWrite,
		ResourceCatalog:   accessWrite,
		ResourceLeads:     accessWrite,
		ResourceCustomers: accessWrite,
	},
	entity.RoleSales: {
		ResourceCatalog:   accessRead,
		ResourceLeads:     accessWrite,
		ResourceCustomers: accessWrite,
	},
	entity.RoleOffice: {
		ResourceCatalog:   accessRead,
		ResourceLeads:     accessRead,
		ResourceCustomers: accessRead,
	},
	entity.RoleService: {
		ResourceCatalog:   accessRead,
		ResourceCustomers: accessWrite,
	},
}

// Allowed decide si el rol puede ejecutar el método HTTP sobre el recurso:
// GET/HEAD exigen lectura, el resto escritura.
func Allowed(role string, res Resource, method string) bool {
	lvl := permissions[role][res]
	switch method {
	case fiber.MethodGet, fiber.MethodHead:
		return lvl >= accessRead
	default:
		return lvl >= accessWrite
	}
}

// RequireAccess niega con 403 cuando el rol del token no alcanza el nivel
// requerido por el método. Debe ir después de AuthMiddleware.
func RequireAccess(res Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Allowed(GetRole(c), res, c.Method()) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "no tiene permisos para esta operación"})
		}
		return c.Next()
	}
}
