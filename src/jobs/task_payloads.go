package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRecomputeResults = "results:recompute"

type ResultsPayload struct {
	SurveyID string `json:"survey_id"`
}

// NewRecomputeResultsTask crea la tarea que recalienta el cache de
// resultados de una encuesta después de recibir una respuesta.
func NewRecomputeResultsTask(surveyID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ResultsPayload{SurveyID: surveyID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRecomputeResults, payload), nil
}
