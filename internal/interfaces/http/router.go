package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coolant-flow-api/internal/application/auth"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
	"github.com/jhoicas/coolant-flow-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Verifier      IdentityVerifier
	AuthUC        *auth.AuthUseCase
	DistributorUC *usecase.DistributorUseCase
	ClientUC      *usecase.ClientUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	ReadingUC     *usecase.ReadingUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/forgot-password", authHandler.ForgotPassword)
	api.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Verifier))

	protected.Get("/profile", authHandler.Profile)
	protected.Put("/profile", authHandler.UpdateProfile)
	protected.Post("/change-password", authHandler.ChangePassword)

	// Distributors; /list antes de /:id
	distributors := protected.Group("/distributors")
	distributorHandler := NewDistributorHandler(deps.DistributorUC)
	distributors.Get("/", distributorHandler.List)
	distributors.Post("/", RequireCreate(policy.ResourceDistributor), distributorHandler.Create)
	distributors.Get("/list", distributorHandler.Options)
	distributors.Get("/:id/qrcode.pdf", distributorHandler.QRCard)
	distributors.Get("/:id/qrcode", distributorHandler.QRData)
	distributors.Get("/:id", distributorHandler.GetByID)
	distributors.Put("/:id", distributorHandler.Update)
	distributors.Delete("/:id", distributorHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", RequireCreate(policy.ResourceClient), clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Employees; dropdowns antes de /:id
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", RequireCreate(policy.ResourceEmployee), employeeHandler.Create)
	employees.Get("/categories", employeeHandler.Categories)
	employees.Get("/managers", employeeHandler.Managers)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Readings (acceso plano)
	readings := protected.Group("/readings")
	readingHandler := NewReadingHandler(deps.ReadingUC)
	readings.Get("/", readingHandler.List)
	readings.Post("/", readingHandler.Create)
	readings.Post("/:id/response", readingHandler.Respond)
	readings.Delete("/:id", readingHandler.Delete)
	protected.Get("/machines", readingHandler.Machines)
}
