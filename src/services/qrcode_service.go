package services

import (
	"fmt"
	"os"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/qrcode"
)

// PublicSurveyURL arma la URL pública para responder una encuesta
func PublicSurveyURL(surveyID string) string {
	baseURL := os.Getenv("APP_PUBLIC_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8888"
	}
	return fmt.Sprintf("%s/encuesta/%s", baseURL, surveyID)
}

// CreateSurveyQRCode genera el QR del enlace público de una encuesta y
// devuelve la ruta servida del PNG
func CreateSurveyQRCode(surveyID string) (string, error) {
	qrData := PublicSurveyURL(surveyID)
	fileName := fmt.Sprintf("encuesta_%s_%d", surveyID, time.Now().Unix())

	if err := qrcode.GenerateQRCode(qrData, fileName); err != nil {
		return "", err
	}

	return fmt.Sprintf("/public/qrcodes/%s.png", fileName), nil
}
