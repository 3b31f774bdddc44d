package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviya/serviya-api/internal/application/admin"
	"github.com/serviya/serviya-api/internal/application/auth"
	"github.com/serviya/serviya-api/internal/application/ports"
	"github.com/serviya/serviya-api/internal/application/provider"
	"github.com/serviya/serviya-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	SubmitUC   *provider.SubmitVerificationUseCase
	ReviewUC   *admin.ReviewUseCase
	LocationUC *usecase.LocationUseCase
	Verifier   ports.TokenVerifier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; el proveedor de identidad valida las credenciales)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)

	// Locations (público, catálogo de referencia)
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/departamentos", locationHandler.ListDepartments)
	locations.Get("/ciudades/:id_departamento", locationHandler.ListCities)
	locations.Get("/barrios/:id_ciudad", locationHandler.ListNeighborhoods)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Verifier))

	// Auth (protegido)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Providers (protegido)
	providers := protected.Group("/providers")
	providerHandler := NewProviderHandler(deps.SubmitUC)
	providers.Post("/solicitar-verificacion", providerHandler.SubmitVerification)

	// Admin (protegido; el rol admin se exige en el caso de uso)
	adminGroup := protected.Group("/admin")
	adminHandler := NewAdminHandler(deps.ReviewUC)
	adminGroup.Get("/verificaciones/pendientes", adminHandler.ListPending)
	adminGroup.Get("/verificaciones/:id", adminHandler.GetDetail)
	adminGroup.Post("/verificaciones/:id/aprobar", adminHandler.Approve)
	adminGroup.Post("/verificaciones/:id/rechazar", adminHandler.Reject)
}
