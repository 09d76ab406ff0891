package responses

import (
	"context"
	"testing"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSubmitResponseEncuestaInactiva(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("RechazaSinEscribir", func(mt *mtest.T) {
		database.SurveyCollection = mt.Coll
		database.ResponseCollection = mt.Coll
		database.AnswerCollection = mt.Coll

		// Solo la consulta de la encuesta tiene respuesta preparada (cursor
		// vacío, como una encuesta desactivada): cualquier escritura
		// posterior fallaría con otro error
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "EncuestasDB.surveys", mtest.FirstBatch))

		req := &models.SubmitResponseRequest{
			Respuestas: []models.AnswerInput{
				{QuestionID: primitive.NewObjectID().Hex(), Respuesta: models.RespuestaSi},
			},
		}
		resp, err := SubmitResponse(context.Background(), primitive.NewObjectID(), req)

		assert.Nil(mt, resp)
		assert.ErrorIs(mt, err, surveys.ErrSurveyNotFound)
	})
}
