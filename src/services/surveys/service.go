package surveys

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrSurveyNotFound = errors.New("encuesta no encontrada")

// CreateSurvey persiste la encuesta y después sus preguntas.
// Son dos escrituras dependientes: si falla la primera no se escribe nada;
// si falla la segunda queda una encuesta sin preguntas (limitación conocida,
// no usamos transacciones).
func CreateSurvey(ctx context.Context, userID primitive.ObjectID, req *models.CreateSurveyRequest) (*models.SurveyWithQuestions, error) {
	for i := range req.Preguntas {
		if err := ValidateDraft(&req.Preguntas[i]); err != nil {
			return nil, err
		}
	}

	activa := true
	if req.Activa != nil {
		activa = *req.Activa
	}

	var descripcion *string
	if req.Descripcion != "" {
		descripcion = &req.Descripcion
	}

	survey := &models.Survey{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Titulo:      req.Titulo,
		Descripcion: descripcion,
		Activa:      activa,
		CreatedAt:   time.Now(),
	}

	if _, err := database.SurveyCollection.InsertOne(ctx, survey); err != nil {
		return nil, err
	}

	questions := BuildQuestionDocs(survey.ID, req.Preguntas)

	// InsertMany con cero documentos es un error del driver
	if len(questions) > 0 {
		docs := make([]interface{}, 0, len(questions))
		for i := range questions {
			docs = append(docs, questions[i])
		}
		if _, err := database.QuestionCollection.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}

	return &models.SurveyWithQuestions{
		Encuesta:  *survey,
		Preguntas: questions,
	}, nil
}

// BuildQuestionDocs transforma los borradores en preguntas persistibles.
// El orden es el índice (base cero) del borrador al momento de enviar, y
// opciones queda en nil salvo para opcion_multiple.
func BuildQuestionDocs(surveyID primitive.ObjectID, drafts []models.QuestionDraft) []models.Question {
	questions := make([]models.Question, 0, len(drafts))
	for i, draft := range drafts {
		var opciones []string
		if draft.Tipo == models.TipoOpcionMultiple {
			opciones = draft.Opciones
		}
		questions = append(questions, models.Question{
			ID:        primitive.NewObjectID(),
			SurveyID:  surveyID,
			Pregunta:  draft.Pregunta,
			Tipo:      draft.Tipo,
			Opciones:  opciones,
			Orden:     i,
			Requerida: draft.Requerida,
		})
	}
	return questions
}

// ValidateDraft valida un borrador según su tipo
func ValidateDraft(draft *models.QuestionDraft) error {
	switch draft.Tipo {
	case models.TipoOpcionMultiple:
		if len(draft.Opciones) == 0 {
			return models.NewValidationError(
				fmt.Sprintf(`la pregunta "%s" de opción múltiple necesita al menos una opción`, draft.Pregunta))
		}
	case models.TipoTexto, models.TipoCalificacion, models.TipoSiNo:
		// Opciones sobrantes de un cambio de tipo se descartan al persistir
	default:
		return models.NewValidationError(fmt.Sprintf("tipo de pregunta desconocido: %s", draft.Tipo))
	}
	return nil
}

// GetSurveysByUser devuelve las encuestas del usuario, más reciente primero
func GetSurveysByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Survey, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := database.SurveyCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	surveys := []models.Survey{}
	if err = cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

// GetSurveyByID devuelve una encuesta del dueño con sus preguntas ordenadas
// y el total de respuestas recibidas.
func GetSurveyByID(ctx context.Context, surveyID, userID primitive.ObjectID) (*models.SurveyWithQuestions, error) {
	var survey models.Survey
	err := database.SurveyCollection.FindOne(ctx, bson.M{"_id": surveyID, "userId": userID}).Decode(&survey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	questions, err := GetSurveyQuestions(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	total, err := database.ResponseCollection.CountDocuments(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}

	return &models.SurveyWithQuestions{
		Encuesta:        survey,
		Preguntas:       questions,
		TotalRespuestas: total,
	}, nil
}

// GetPublicSurvey devuelve una encuesta para responder. El filtro activa
// es el que impide cargar el formulario de una encuesta desactivada.
func GetPublicSurvey(ctx context.Context, surveyID primitive.ObjectID) (*models.SurveyWithQuestions, error) {
	var survey models.Survey
	err := database.SurveyCollection.FindOne(ctx, bson.M{"_id": surveyID, "activa": true}).Decode(&survey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	questions, err := GetSurveyQuestions(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	return &models.SurveyWithQuestions{
		Encuesta:  survey,
		Preguntas: questions,
	}, nil
}

// GetSurveyQuestions devuelve las preguntas ordenadas por orden ascendente
func GetSurveyQuestions(ctx context.Context, surveyID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orden", Value: 1}})

	cursor, err := database.QuestionCollection.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
