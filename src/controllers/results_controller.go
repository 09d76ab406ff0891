package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/services/responses"
	"github.com/Kenisaa/EncuestasConQR/src/services/results"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"github.com/gofiber/fiber/v2"
)

// GetSurveyResults devuelve los datos agregados para graficar
func GetSurveyResults(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	surveyID, err := surveyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid survey ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	agg, err := results.GetSurveyResults(ctx, surveyID, userID)
	if err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al calcular los resultados",
		})
	}

	return c.JSON(agg)
}

// ExportSurveyCSV descarga las respuestas de una encuesta como CSV
func ExportSurveyCSV(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	surveyID, err := surveyIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid survey ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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

	resps, err := responses.GetResponsesBySurvey(ctx, surveyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener las respuestas",
		})
	}

	csv, err := results.BuildCSV(detail.Preguntas, resps)
	if err != nil {
		if errors.Is(err, results.ErrNoResponses) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al exportar",
		})
	}

	fileName := results.ExportFileName(detail.Encuesta.Titulo)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(csv)
}
