package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Kenisaa/EncuestasConQR/src/database"
	"github.com/Kenisaa/EncuestasConQR/src/models"
	"github.com/Kenisaa/EncuestasConQR/src/services/responses"
	"github.com/Kenisaa/EncuestasConQR/src/services/results"
	"github.com/Kenisaa/EncuestasConQR/src/services/surveys"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleRecomputeResultsTask recalcula los resultados agregados de una
// encuesta y los deja en el cache, para que el dueño los vea al instante.
func HandleRecomputeResultsTask(ctx context.Context, t *asynq.Task) error {
	var payload ResultsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.SurveyID)
	if err != nil {
		return err
	}

	var survey models.Survey
	err = database.SurveyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Println("⚠️ Survey not found. Possibly deleted. Skipping task:", payload.SurveyID)
			return nil
		}
		return err
	}

	questions, err := surveys.GetSurveyQuestions(ctx, id)
	if err != nil {
		return err
	}

	resps, err := responses.GetResponsesBySurvey(ctx, id)
	if err != nil {
		return err
	}

	computed := results.BuildSurveyResults(survey, questions, resps)
	results.CacheResults(&computed)

	log.Printf("✅ Results cache warmed for survey %s (%d responses)", payload.SurveyID, len(resps))
	return nil
}

// StartWorker levanta el worker de asynq. No hace nada sin Redis.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker disabled.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRecomputeResults, HandleRecomputeResultsTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
}
