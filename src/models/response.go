package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Response ---
type Response struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SurveyID          primitive.ObjectID `bson:"surveyId" json:"survey_id"`
	RespondenteNombre *string            `bson:"respondenteNombre,omitempty" json:"respondente_nombre"`
	RespondenteEmail  *string            `bson:"respondenteEmail,omitempty" json:"respondente_email"`
	CreatedAt         time.Time          `bson:"createdAt" json:"created_at"`
}

// --- Answer ---
// Para calificacion, Respuesta guarda el entero 1-5 como texto.
// Para si_no guarda RespuestaSi o RespuestaNo.
type Answer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResponseID primitive.ObjectID `bson:"responseId" json:"response_id"`
	QuestionID primitive.ObjectID `bson:"questionId" json:"question_id"`
	Respuesta  string             `bson:"respuesta" json:"respuesta"`
}

// AnswerInput es un par (pregunta, valor) tal como lo envía el respondente.
type AnswerInput struct {
	QuestionID string `json:"question_id" validate:"required"`
	Respuesta  string `json:"respuesta"`
}

type SubmitResponseRequest struct {
	RespondenteNombre string        `json:"respondente_nombre"`
	RespondenteEmail  string        `json:"respondente_email"`
	Respuestas        []AnswerInput `json:"respuestas" validate:"dive"`
}

type ResponseWithAnswers struct {
	Response `bson:",inline"`
	Answers  []Answer `bson:"-" json:"answers"`
}
