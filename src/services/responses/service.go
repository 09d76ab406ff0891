package responses

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitResponse valida y persiste una respuesta pública.
// Primero la fila de response, después las answers en lote; si el lote
// falla queda una respuesta sin answers (sin rollback, limitación
// conocida).
func SubmitResponse(ctx context.Context, surveyID primitive.ObjectID, req *models.SubmitResponseRequest) (*models.Response, error) {
	// El filtro activa también protege el envío directo por API
	survey, err := surveys.GetPublicSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAnswers(survey.Preguntas, req.Respuestas); err != nil {
		return nil, err
	}

	var nombre, email *string
	if req.RespondenteNombre != "" {
		nombre = &req.RespondenteNombre
	}
	if req.RespondenteEmail != "" {
		email = &req.RespondenteEmail
	}

	response := &models.Response{
		ID:                primitive.NewObjectID(),
		SurveyID:          surveyID,
		RespondenteNombre: nombre,
		RespondenteEmail:  email,
		CreatedAt:         time.Now(),
	}

	// Los documentos de answers se arman antes de escribir nada: un id
	// inválido acá no deja una respuesta huérfana. ValidateAnswers ya
	// garantizó que cada hex corresponde a una pregunta existente.
	docs := make([]interface{}, 0, len(req.Respuestas))
	for _, input := range req.Respuestas {
		questionID, err := primitive.ObjectIDFromHex(input.QuestionID)
		if err != nil {
			return nil, models.NewValidationError("la respuesta referencia una pregunta inexistente")
		}
		docs = append(docs, models.Answer{
			ID:         primitive.NewObjectID(),
			ResponseID: response.ID,
			QuestionID: questionID,
			Respuesta:  input.Respuesta,
		})
	}

	if _, err := database.ResponseCollection.InsertOne(ctx, response); err != nil {
		return nil, err
	}

	if len(docs) > 0 {
		if _, err := database.AnswerCollection.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Response %s saved for survey %s (%d answers)",
		response.ID.Hex(), surveyID.Hex(), len(docs))

	return response, nil
}

// ValidateAnswers verifica antes de escribir que toda pregunta requerida
// tenga un valor no vacío y que ninguna pregunta se responda dos veces.
func ValidateAnswers(questions []models.Question, answers []models.AnswerInput) error {
	questionMap := make(map[string]models.Question)
	for _, q := range questions {
		questionMap[q.ID.Hex()] = q
	}

	answered := make(map[string]string)
	for _, a := range answers {
		q, exists := questionMap[a.QuestionID]
		if !exists {
			return models.NewValidationError("la respuesta referencia una pregunta inexistente")
		}
		if _, dup := answered[a.QuestionID]; dup {
			return models.NewValidationError(
				fmt.Sprintf(`la pregunta "%s" tiene más de una respuesta`, q.Pregunta))
		}
		answered[a.QuestionID] = a.Respuesta
	}

	for _, q := range questions {
		if !q.Requerida {
			continue
		}
		if value, ok := answered[q.ID.Hex()]; !ok || value == "" {
			return models.NewValidationError(
				fmt.Sprintf(`la pregunta "%s" es requerida`, q.Pregunta))
		}
	}

	return nil
}

// GetResponsesBySurvey devuelve las respuestas con sus answers anidadas,
// más reciente primero.
func GetResponsesBySurvey(ctx context.Context, surveyID primitive.ObjectID) ([]models.ResponseWithAnswers, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := database.ResponseCollection.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := []models.ResponseWithAnswers{}
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	if len(responses) == 0 {
		return responses, nil
	}

	ids := make([]primitive.ObjectID, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}

	answersCursor, err := database.AnswerCollection.Find(ctx, bson.M{"responseId": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer answersCursor.Close(ctx)

	var answers []models.Answer
	if err = answersCursor.All(ctx, &answers); err != nil {
		return nil, err
	}

	byResponse := make(map[primitive.ObjectID][]models.Answer)
	for _, a := range answers {
		byResponse[a.ResponseID] = append(byResponse[a.ResponseID], a)
	}
	for i := range responses {
		responses[i].Answers = byResponse[responses[i].ID]
	}

	return responses, nil
}

// CountResponses cuenta las respuestas de una encuesta
func CountResponses(ctx context.Context, surveyID primitive.ObjectID) (int64, error) {
	return database.ResponseCollection.CountDocuments(ctx, bson.M{"surveyId": surveyID})
}
