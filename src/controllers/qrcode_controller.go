package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/services"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"github.com/gofiber/fiber/v2"
)

// GetSurveyQRCode genera el QR del enlace público de una encuesta del dueño
func GetSurveyQRCode(c *fiber.Ctx) error {
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

	if _, err := surveys.GetSurveyByID(ctx, surveyID, userID); err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener la encuesta",
		})
	}

	qrPath, err := services.CreateSurveyQRCode(surveyID.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al generar el código QR",
		})
	}

	return c.JSON(fiber.Map{
		"url": services.PublicSurveyURL(surveyID.Hex()),
		"qr":  qrPath,
	})
}
