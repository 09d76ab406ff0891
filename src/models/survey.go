package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de pregunta soportados
const (
	TipoTexto          = "texto"
	TipoOpcionMultiple = "opcion_multiple"
	TipoCalificacion   = "calificacion"
	TipoSiNo           = "si_no"
)

// Respuestas fijas para preguntas si_no
const (
	RespuestaSi = "Sí"
	RespuestaNo = "No"
)

// --- Survey ---
type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"user_id"`
	Titulo      string             `bson:"titulo" json:"titulo"`
	Descripcion *string            `bson:"descripcion,omitempty" json:"descripcion"`
	Activa      bool               `bson:"activa" json:"activa"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}

// --- Question ---
// Opciones solo existe cuando Tipo == opcion_multiple.
type Question struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SurveyID  primitive.ObjectID `bson:"surveyId" json:"survey_id"`
	Pregunta  string             `bson:"pregunta" json:"pregunta"`
	Tipo      string             `bson:"tipo" json:"tipo"`
	Opciones  []string           `bson:"opciones,omitempty" json:"opciones"`
	Orden     int                `bson:"orden" json:"orden"`
	Requerida bool               `bson:"requerida" json:"requerida"`
}

// QuestionDraft es una pregunta en edición, antes de persistir.
// El orden no se guarda durante la edición: se deriva del índice al enviar.
type QuestionDraft struct {
	Pregunta  string   `json:"pregunta" validate:"required"`
	Tipo      string   `json:"tipo" validate:"required,oneof=texto opcion_multiple calificacion si_no"`
	Opciones  []string `json:"opciones"`
	Requerida bool     `json:"requerida"`
}

type CreateSurveyRequest struct {
	Titulo      string          `json:"titulo" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Activa      *bool           `json:"activa"`
	Preguntas   []QuestionDraft `json:"preguntas" validate:"required,min=1,dive"`
}

type SurveyWithQuestions struct {
	Encuesta        Survey     `json:"encuesta"`
	Preguntas       []Question `json:"preguntas"`
	TotalRespuestas int64      `json:"total_respuestas"`
}
