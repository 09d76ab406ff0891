package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSubmitResponseRequestValidation(t *testing.T) {
	v := validator.New()

	req := SubmitResponseRequest{
		Respuestas: []AnswerInput{{Respuesta: "Sí"}},
	}
	assert.Error(t, v.Struct(&req), "cada respuesta necesita su question_id")

	req.Respuestas[0].QuestionID = "68b1c0ffee0000000000aaaa"
	assert.NoError(t, v.Struct(&req))
}
