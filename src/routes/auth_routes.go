package routes

import (
	"github.com/Kenisaa/EncuestasConQR/src/controllers"
	"github.com/Kenisaa/EncuestasConQR/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes define las rutas de registro y sesión
func authRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetCurrentUser)
}
