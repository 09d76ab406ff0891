package results

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Kenisaa/EncuestasConQR/src/models"
)

var ErrNoResponses = errors.New("No hay respuestas para exportar")

var fileNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Formato de fecha día/mes/año, sin coma para no romper la fila
const exportDateLayout = "2/1/2006 15:04:05"

// BuildCSV arma el CSV de resultados: una columna por pregunta (en orden)
// y una fila por respuesta (más reciente primero). Cada celda de respuesta
// va siempre entre comillas, con las comillas internas duplicadas, para
// que texto libre con comas o saltos de línea no rompa el formato. El BOM
// inicial hace que las planillas detecten UTF-8.
func BuildCSV(questions []models.Question, resps []models.ResponseWithAnswers) ([]byte, error) {
	if len(resps) == 0 {
		return nil, ErrNoResponses
	}

	var sb strings.Builder
	sb.WriteString("\ufeff")

	headers := []string{"Fecha", "Nombre", "Email"}
	for _, q := range questions {
		headers = append(headers, q.Pregunta)
	}
	sb.WriteString(strings.Join(headers, ","))
	sb.WriteString("\n")

	for i, r := range resps {
		row := []string{
			r.CreatedAt.Format(exportDateLayout),
			stringOrEmpty(r.RespondenteNombre),
			stringOrEmpty(r.RespondenteEmail),
		}
		for _, q := range questions {
			row = append(row, answerCell(r.Answers, q))
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(row, ","))
	}

	return []byte(sb.String()), nil
}

// answerCell busca la respuesta a una pregunta; si no existe la celda
// queda vacía (pregunta omitida).
func answerCell(answers []models.Answer, q models.Question) string {
	for _, a := range answers {
		if a.QuestionID == q.ID {
			return `"` + strings.ReplaceAll(a.Respuesta, `"`, `""`) + `"`
		}
	}
	return ""
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportFileName deriva el nombre del archivo del título de la encuesta:
// todo lo que no sea alfanumérico se reemplaza por guion bajo.
func ExportFileName(titulo string) string {
	return fileNameSanitizer.ReplaceAllString(titulo, "_") + "_resultados.csv"
}
