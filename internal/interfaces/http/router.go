package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/importer"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *auth.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ProductUC     *usecase.ProductUseCase
	LeadUC        *crm.LeadUseCase
	CustomerUC    *crm.CustomerUseCase
	ImportUC      *importer.ImportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todo lo que no es auth pasa por
// AuthMiddleware y por la tabla de acceso por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout siempre responde OK, con o sin token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireAccess(ResourceUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Catálogo: categorías, subcategorías y productos comparten regla de acceso
	categories := protected.Group("/categories", RequireAccess(ResourceCatalog))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	subCategories := protected.Group("/subcategories", RequireAccess(ResourceCatalog))
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	subCategories.Post("/", subCategoryHandler.Create)
	subCategories.Get("/", subCategoryHandler.List)
	subCategories.Get("/:id", subCategoryHandler.GetByID)
	subCategories.Put("/:id", subCategoryHandler.Update)
	subCategories.Delete("/:id", subCategoryHandler.Delete)

	products := protected.Group("/products", RequireAccess(ResourceCatalog))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Leads (conversión e importación incluidas)
	leads := protected.Group("/leads", RequireAccess(ResourceLeads))
	leadHandler := NewLeadHandler(deps.LeadUC, deps.ImportUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Post("/upload", leadHandler.Upload)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)
	leads.Post("/:id/convert", leadHandler.Convert)

	// Customers (importación incluida)
	customers := protected.Group("/customers", RequireAccess(ResourceCustomers))
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ImportUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Post("/upload", customerHandler.Upload)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}
