package surveys

import (
	"context"
	"testing"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetPublicSurveyInactiva(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("NoSeCargaElFormulario", func(mt *mtest.T) {
		database.SurveyCollection = mt.Coll

		// Una encuesta desactivada no matchea el filtro de la consulta
		// pública: el cursor llega vacío
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "EncuestasDB.surveys", mtest.FirstBatch))

		detail, err := GetPublicSurvey(context.Background(), primitive.NewObjectID())

		assert.Nil(mt, detail)
		assert.ErrorIs(mt, err, ErrSurveyNotFound)

		// La consulta siempre filtra por activa: true
		evt := mt.GetStartedEvent()
		assert.Equal(mt, "find", evt.CommandName)
		activa, ok := evt.Command.Lookup("filter", "activa").BooleanOK()
		assert.True(mt, ok)
		assert.True(mt, activa)
	})
}

func TestCreateSurveySinPreguntas(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("NoEjecutaInsertManyVacio", func(mt *mtest.T) {
		database.SurveyCollection = mt.Coll
		database.QuestionCollection = mt.Coll

		// Solo el insert de la encuesta tiene respuesta preparada: un
		// InsertMany con cero documentos fallaría acá
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		out, err := CreateSurvey(context.Background(), primitive.NewObjectID(),
			&models.CreateSurveyRequest{Titulo: "Clima laboral"})

		assert.NoError(mt, err)
		assert.Empty(mt, out.Preguntas)
	})
}
