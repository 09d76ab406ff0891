package routes

import (
	"github.com/Kenisaa/EncuestasConQR/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// publicRoutes define las rutas de los respondentes, sin sesión.
// El filtro activa de la encuesta es el único control de acceso.
func publicRoutes(app *fiber.App) {
	public := app.Group("/api/public/surveys")

	public.Get("/:id", controllers.GetPublicSurvey)
	public.Post("/:id/responses", controllers.SubmitResponse)
}
