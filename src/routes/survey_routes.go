package routes

import (
	"github.com/Kenisaa/EncuestasConQR/src/controllers"
	"github.com/Kenisaa/EncuestasConQR/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// surveyRoutes define las rutas del dueño (requieren sesión)
func surveyRoutes(app *fiber.App) {
	surveys := app.Group("/api/surveys", middleware.AuthJWT)

	surveys.Post("/", controllers.CreateSurvey)
	surveys.Get("/", controllers.GetMySurveys)
	surveys.Get("/:id", controllers.GetSurveyByID)
	surveys.Get("/:id/responses", controllers.GetSurveyResponses)
	surveys.Get("/:id/results", controllers.GetSurveyResults)
	surveys.Get("/:id/export", controllers.ExportSurveyCSV)
	surveys.Get("/:id/qrcode", controllers.GetSurveyQRCode)
}
