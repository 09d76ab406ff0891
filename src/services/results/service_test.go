package results

import (
	"testing"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newQuestion(tipo string, opciones []string) models.Question {
	return models.Question{
		ID:       primitive.NewObjectID(),
		SurveyID: primitive.NewObjectID(),
		Pregunta: "¿Pregunta de prueba?",
		Tipo:     tipo,
		Opciones: opciones,
	}
}

func newResponse(q models.Question, valores ...string) models.ResponseWithAnswers {
	r := models.ResponseWithAnswers{}
	r.ID = primitive.NewObjectID()
	r.SurveyID = q.SurveyID
	r.CreatedAt = time.Now()
	for _, v := range valores {
		r.Answers = append(r.Answers, models.Answer{
			ID:         primitive.NewObjectID(),
			ResponseID: r.ID,
			QuestionID: q.ID,
			Respuesta:  v,
		})
	}
	return r
}

func TestOpcionMultipleAggregation(t *testing.T) {
	q := newQuestion(models.TipoOpcionMultiple, []string{"A", "B", "C"})

	t.Run("SinRespuestas", func(t *testing.T) {
		result := BuildQuestionResult(q, nil, 0)

		// Toda opción declarada aparece, aun con cero respuestas
		assert.Len(t, result.Data, 3)
		assert.Equal(t, "A", result.Data[0].Name)
		assert.Equal(t, "B", result.Data[1].Name)
		assert.Equal(t, "C", result.Data[2].Name)
		for _, p := range result.Data {
			assert.Equal(t, 0, p.Value)
			assert.Equal(t, 0.0, p.Porcentaje)
		}
	})

	t.Run("ConteoPorOpcion", func(t *testing.T) {
		resps := []models.ResponseWithAnswers{
			newResponse(q, "A"),
			newResponse(q, "B"),
			newResponse(q, "A"),
		}
		result := BuildQuestionResult(q, resps, len(resps))

		assert.Equal(t, 2, result.Data[0].Value)
		assert.Equal(t, 1, result.Data[1].Value)
		assert.Equal(t, 0, result.Data[2].Value)

		// La suma de los conteos es la cantidad de respuestas dadas
		total := 0
		for _, p := range result.Data {
			total += p.Value
		}
		assert.Equal(t, 3, total)
	})

	t.Run("PorcentajeSobreTotalDeRespuestas", func(t *testing.T) {
		// 4 respuestas en total pero solo 2 contestaron esta pregunta:
		// los porcentajes suman menos de 100 (comportamiento heredado)
		resps := []models.ResponseWithAnswers{
			newResponse(q, "A"),
			newResponse(q, "A"),
			{},
			{},
		}
		result := BuildQuestionResult(q, resps, len(resps))

		assert.Equal(t, 50.0, result.Data[0].Porcentaje)
		assert.Equal(t, 0.0, result.Data[1].Porcentaje)
	})
}

func TestCalificacionAggregation(t *testing.T) {
	q := newQuestion(models.TipoCalificacion, nil)

	t.Run("PromedioRedondeado", func(t *testing.T) {
		resps := []models.ResponseWithAnswers{
			newResponse(q, "5"),
			newResponse(q, "4"),
			newResponse(q, "4"),
		}
		result := BuildQuestionResult(q, resps, len(resps))

		assert.Len(t, result.Data, 5)
		assert.Equal(t, "1 ⭐", result.Data[0].Name)
		assert.Equal(t, "5 ⭐", result.Data[4].Name)
		assert.Equal(t, 2, result.Data[3].Value)
		assert.Equal(t, 1, result.Data[4].Value)

		// (5+4+4)/3 = 4.333... → 4.33
		assert.NotNil(t, result.Promedio)
		assert.Equal(t, 4.33, *result.Promedio)
	})

	t.Run("SinRespuestasSinPromedio", func(t *testing.T) {
		result := BuildQuestionResult(q, nil, 0)
		assert.Nil(t, result.Promedio)
	})
}

func TestSiNoAggregation(t *testing.T) {
	q := newQuestion(models.TipoSiNo, nil)

	resps := []models.ResponseWithAnswers{
		newResponse(q, "Sí"),
		newResponse(q, "No"),
		newResponse(q, "Sí"),
	}
	result := BuildQuestionResult(q, resps, len(resps))

	// Siempre dos entradas, Sí primero
	assert.Len(t, result.Data, 2)
	assert.Equal(t, "Sí", result.Data[0].Name)
	assert.Equal(t, 2, result.Data[0].Value)
	assert.Equal(t, "No", result.Data[1].Name)
	assert.Equal(t, 1, result.Data[1].Value)
}

func TestTextoAggregation(t *testing.T) {
	q := newQuestion(models.TipoTexto, nil)

	resps := []models.ResponseWithAnswers{
		newResponse(q, "tercera"),
		newResponse(q, "segunda"),
		newResponse(q, "primera"),
	}
	result := BuildQuestionResult(q, resps, len(resps))

	// Sin agregación: se conserva el orden de llegada de las respuestas
	assert.Empty(t, result.Data)
	assert.Equal(t, []string{"tercera", "segunda", "primera"}, result.Respuestas)
}

func TestBuildSurveyResults(t *testing.T) {
	q1 := newQuestion(models.TipoSiNo, nil)
	q2 := newQuestion(models.TipoTexto, nil)
	q2.SurveyID = q1.SurveyID

	survey := models.Survey{
		ID:     q1.SurveyID,
		Titulo: "Encuesta de satisfacción",
	}

	resps := []models.ResponseWithAnswers{newResponse(q1, "Sí")}

	out := BuildSurveyResults(survey, []models.Question{q1, q2}, resps)

	assert.Equal(t, survey.ID, out.SurveyID)
	assert.Equal(t, 1, out.TotalRespuestas)
	assert.Len(t, out.Preguntas, 2)
	assert.Equal(t, q1.ID, out.Preguntas[0].QuestionID)
}
