package controllers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/jobs"
	"github.com/Kenisaa/EncuestasConQR/src/models"
	"github.com/Kenisaa/EncuestasConQR/src/services/responses"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"github.com/gofiber/fiber/v2"
)

// SubmitResponse recibe una respuesta pública a una encuesta activa
func SubmitResponse(c *fiber.Ctx) error {
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid survey ID"})
	}

	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cada respuesta necesita el identificador de su pregunta",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response, err := responses.SubmitResponse(ctx, surveyID, &req)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
		}
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al enviar la encuesta",
		})
	}

	// Recalentar el cache de resultados en segundo plano, best effort
	if database.AsynqClient != nil {
		if task, err := jobs.NewRecomputeResultsTask(surveyID.Hex()); err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err != nil {
				log.Println("⚠️ Failed to enqueue results recompute:", err)
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetSurveyResponses lista las respuestas de una encuesta del dueño
func GetSurveyResponses(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	surveyID, err := surveyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid survey ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// La encuesta tiene que existir y ser del usuario
	if _, err := surveys.GetSurveyByID(ctx, surveyID, userID); err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener la encuesta",
		})
	}

	list, err := responses.GetResponsesBySurvey(ctx, surveyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener las respuestas",
		})
	}

	return c.JSON(list)
}
