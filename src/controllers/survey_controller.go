package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/models"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateSurvey recibe la encuesta con sus preguntas y la persiste
func CreateSurvey(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	var req models.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El título y al menos una pregunta son requeridos",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := surveys.CreateSurvey(ctx, userID, &req)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear la encuesta",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMySurveys lista las encuestas del usuario autenticado
func GetMySurveys(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	list, err := surveys.GetSurveysByUser(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener las encuestas",
		})
	}

	return c.JSON(list)
}

// GetSurveyByID devuelve una encuesta del dueño con preguntas y total de respuestas
func GetSurveyByID(c *fiber.Ctx) error {
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

	detail, err := surveys.GetSurveyByID(ctx, surveyID, userID)
	if err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener la encuesta",
		})
	}

	return c.JSON(detail)
}

// GetPublicSurvey devuelve una encuesta activa para responder.
// Una encuesta desactivada responde 404: el formulario nunca se carga.
func GetPublicSurvey(c *fiber.Ctx) error {
	surveyID, err := surveyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid survey ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	detail, err := surveys.GetPublicSurvey(ctx, surveyID)
	if err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener la encuesta",
		})
	}

	return c.JSON(detail)
}

func surveyIDParam(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}
