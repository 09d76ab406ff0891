package results

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"
	"github.com/Kenisaa/EncuestasConQR/src/services/responses"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const cacheTTL = 10 * time.Minute

// ChartPoint es un par etiqueta/cantidad listo para graficar.
// Porcentaje se calcula sobre el total de respuestas de la encuesta, no
// sobre quienes respondieron esta pregunta: con preguntas omitidas puede
// sumar menos de 100%. Se conserva tal cual para no cambiar los gráficos.
type ChartPoint struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Porcentaje float64 `json:"porcentaje"`
}

type QuestionResult struct {
	QuestionID primitive.ObjectID `json:"question_id"`
	Pregunta   string             `json:"pregunta"`
	Tipo       string             `json:"tipo"`
	Data       []ChartPoint       `json:"data,omitempty"`
	Promedio   *float64           `json:"promedio,omitempty"`
	Respuestas []string           `json:"respuestas,omitempty"`
}

type SurveyResults struct {
	SurveyID        primitive.ObjectID `json:"survey_id"`
	Titulo          string             `json:"titulo"`
	TotalRespuestas int                `json:"total_respuestas"`
	Preguntas       []QuestionResult   `json:"preguntas"`
}

// BuildSurveyResults agrega todas las preguntas de una encuesta.
// Es una función pura de (preguntas, respuestas): se puede recalcular en
// cada request y cachear por (encuesta, cantidad de respuestas).
func BuildSurveyResults(survey models.Survey, questions []models.Question, resps []models.ResponseWithAnswers) SurveyResults {
	out := SurveyResults{
		SurveyID:        survey.ID,
		Titulo:          survey.Titulo,
		TotalRespuestas: len(resps),
		Preguntas:       make([]QuestionResult, 0, len(questions)),
	}
	for _, q := range questions {
		out.Preguntas = append(out.Preguntas, BuildQuestionResult(q, resps, len(resps)))
	}
	return out
}

// BuildQuestionResult calcula los datos de gráfico de una pregunta
func BuildQuestionResult(q models.Question, resps []models.ResponseWithAnswers, totalResponses int) QuestionResult {
	answers := gatherAnswers(q.ID, resps)

	result := QuestionResult{
		QuestionID: q.ID,
		Pregunta:   q.Pregunta,
		Tipo:       q.Tipo,
	}

	switch q.Tipo {
	case models.TipoOpcionMultiple:
		// Una entrada por opción declarada, en su orden, incluyendo ceros
		for _, opcion := range q.Opciones {
			count := countMatches(answers, opcion)
			result.Data = append(result.Data, chartPoint(opcion, count, totalResponses))
		}

	case models.TipoCalificacion:
		for rating := 1; rating <= 5; rating++ {
			count := countMatches(answers, strconv.Itoa(rating))
			result.Data = append(result.Data, chartPoint(fmt.Sprintf("%d ⭐", rating), count, totalResponses))
		}
		result.Promedio = averageRating(answers)

	case models.TipoSiNo:
		// Siempre dos entradas, Sí primero
		result.Data = append(result.Data,
			chartPoint(models.RespuestaSi, countMatches(answers, models.RespuestaSi), totalResponses),
			chartPoint(models.RespuestaNo, countMatches(answers, models.RespuestaNo), totalResponses))

	case models.TipoTexto:
		// Sin agregación: se muestran tal cual, en el orden de llegada
		result.Respuestas = answers
	}

	return result
}

// gatherAnswers junta los valores respondidos para una pregunta,
// conservando el orden de las respuestas (más reciente primero).
func gatherAnswers(questionID primitive.ObjectID, resps []models.ResponseWithAnswers) []string {
	values := []string{}
	for _, r := range resps {
		for _, a := range r.Answers {
			if a.QuestionID == questionID {
				values = append(values, a.Respuesta)
			}
		}
	}
	return values
}

func countMatches(answers []string, value string) int {
	count := 0
	for _, a := range answers {
		if a == value {
			count++
		}
	}
	return count
}

// averageRating promedia las respuestas parseadas como enteros, redondeado
// a 2 decimales. Sin respuestas no hay promedio.
func averageRating(answers []string) *float64 {
	if len(answers) == 0 {
		return nil
	}

	sum := 0
	for _, a := range answers {
		n, err := strconv.Atoi(a)
		if err != nil {
			continue
		}
		sum += n
	}

	avg := math.Round(float64(sum)/float64(len(answers))*100) / 100
	return &avg
}

func chartPoint(name string, count, totalResponses int) ChartPoint {
	var pct float64
	if totalResponses > 0 {
		pct = math.Round(float64(count)/float64(totalResponses)*1000) / 10
	}
	return ChartPoint{Name: name, Value: count, Porcentaje: pct}
}

// GetSurveyResults devuelve los resultados agregados de una encuesta del
// dueño, usando el cache de Redis cuando la versión (cantidad de
// respuestas) no cambió.
func GetSurveyResults(ctx context.Context, surveyID, userID primitive.ObjectID) (*SurveyResults, error) {
	detail, err := surveys.GetSurveyByID(ctx, surveyID, userID)
	if err != nil {
		return nil, err
	}

	if cached := getCachedResults(surveyID, detail.TotalRespuestas); cached != nil {
		return cached, nil
	}

	resps, err := responses.GetResponsesBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	results := BuildSurveyResults(detail.Encuesta, detail.Preguntas, resps)
	CacheResults(&results)

	return &results, nil
}

func resultsCacheKey(surveyID primitive.ObjectID, totalResponses int) string {
	return fmt.Sprintf("results:%s:%d", surveyID.Hex(), totalResponses)
}

func getCachedResults(surveyID primitive.ObjectID, totalResponses int64) *SurveyResults {
	if database.RedisClient == nil {
		return nil
	}

	raw, err := database.RedisClient.Get(database.RedisCtx, resultsCacheKey(surveyID, int(totalResponses))).Result()
	if err != nil {
		return nil
	}

	var results SurveyResults
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil
	}
	return &results
}

// CacheResults guarda los resultados en Redis. Best effort: si falla solo
// se registra.
func CacheResults(results *SurveyResults) {
	if database.RedisClient == nil {
		return
	}

	raw, err := json.Marshal(results)
	if err != nil {
		log.Println("⚠️ Failed to encode results for cache:", err)
		return
	}

	key := resultsCacheKey(results.SurveyID, results.TotalRespuestas)
	if err := database.RedisClient.Set(database.RedisCtx, key, raw, cacheTTL).Err(); err != nil {
		log.Println("⚠️ Failed to cache results:", err)
	}
}
