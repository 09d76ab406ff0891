package surveys

import (
	"testing"

	"github.com/Kenisaa/EncuestasConQR/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildQuestionDocs(t *testing.T) {
	surveyID := primitive.NewObjectID()
	drafts := []models.QuestionDraft{
		{Pregunta: "¿Cómo nos conociste?", Tipo: models.TipoOpcionMultiple, Opciones: []string{"Web", "Amigo"}},
		{Pregunta: "Comentarios", Tipo: models.TipoTexto, Requerida: false},
		{Pregunta: "Puntaje", Tipo: models.TipoCalificacion, Requerida: true},
	}

	questions := BuildQuestionDocs(surveyID, drafts)

	assert.Len(t, questions, len(drafts))

	for i, q := range questions {
		// El orden es el índice base cero en el momento del envío
		assert.Equal(t, i, q.Orden)
		assert.Equal(t, surveyID, q.SurveyID)
		assert.False(t, q.ID.IsZero())
		assert.Equal(t, drafts[i].Pregunta, q.Pregunta)
	}

	// Opciones solo para opcion_multiple; nil para el resto
	assert.Equal(t, []string{"Web", "Amigo"}, questions[0].Opciones)
	assert.Nil(t, questions[1].Opciones)
	assert.Nil(t, questions[2].Opciones)

	assert.True(t, questions[2].Requerida)
}

func TestBuildQuestionDocsIgnoraOpcionesAjenas(t *testing.T) {
	// Si un borrador cambió de tipo y arrastra opciones, no se persisten
	drafts := []models.QuestionDraft{
		{Pregunta: "Libre", Tipo: models.TipoTexto, Opciones: []string{"sobrante"}},
	}

	questions := BuildQuestionDocs(primitive.NewObjectID(), drafts)
	assert.Nil(t, questions[0].Opciones)
}

func TestValidateDraft(t *testing.T) {
	t.Run("OpcionMultipleSinOpciones", func(t *testing.T) {
		draft := models.QuestionDraft{Pregunta: "Elegí una", Tipo: models.TipoOpcionMultiple}
		err := ValidateDraft(&draft)

		assert.Error(t, err)
		var vErr *models.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Contains(t, err.Error(), "Elegí una")
	})

	t.Run("TipoDesconocido", func(t *testing.T) {
		draft := models.QuestionDraft{Pregunta: "X", Tipo: "ranking"}
		assert.Error(t, ValidateDraft(&draft))
	})

	t.Run("Validos", func(t *testing.T) {
		valid := []models.QuestionDraft{
			{Pregunta: "A", Tipo: models.TipoTexto},
			{Pregunta: "A2", Tipo: models.TipoTexto, Opciones: []string{"sobrante"}},
			{Pregunta: "B", Tipo: models.TipoCalificacion},
			{Pregunta: "C", Tipo: models.TipoSiNo},
			{Pregunta: "D", Tipo: models.TipoOpcionMultiple, Opciones: []string{"1", "2"}},
		}
		for _, draft := range valid {
			assert.NoError(t, ValidateDraft(&draft))
		}
	})
}
