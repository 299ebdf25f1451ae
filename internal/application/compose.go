package application

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// Compose maps the outcome of ValidateService.Validate to a status code and
// a JSON-encodable body.
//
// A validator that ran but produced no usable report is answered with 200
// and an error body; existing clients rely on that status.
func Compose(report *domain.Report, err error) (int, any) {
	if err == nil {
		return http.StatusOK, domain.ReportEnvelope{CSSValidation: report}
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError, domain.ProcessErrorBody{
			Error:   domain.MsgExecutionFailure,
			Details: err.Error(),
		}
	}

	switch de.Kind {
	case domain.KindInvalidParameter, domain.KindBadRequest:
		return http.StatusBadRequest, domain.ErrorBody{Error: de.Message}
	case domain.KindValidationTool:
		return http.StatusOK, domain.ProcessErrorBody{Error: de.Message, Details: de.Details, ExitCode: de.ExitCode}
	default:
		return http.StatusInternalServerError, domain.ProcessErrorBody{Error: de.Message, Details: de.Details, ExitCode: de.ExitCode}
	}
}

// Outcome names the result for metrics and logs.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Kind.String()
	}
	return domain.KindExecutionFailure.String()
}

// EncodeJSON pretty-prints v with a four-space indent and without escaping
// HTML characters or non-ASCII text.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
