package application

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssbridge/cssbridge/internal/domain"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	b, err := EncodeJSON(v)
	require.NoError(t, err)
	return string(b)
}

func TestCompose_Report(t *testing.T) {
	report := domain.NewReport()
	report.CheckedBy = "http://jigsaw.w3.org/css-validator/"
	report.CSSLevel = "css3svg"
	report.Date = "2026-10-18T09:12:44Z"

	status, body := Compose(report, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{
    "cssvalidation": {
        "checkedby": "http://jigsaw.w3.org/css-validator/",
        "csslevel": "css3svg",
        "date": "2026-10-18T09:12:44Z",
        "validity": true,
        "errors": [],
        "warnings": [],
        "result": {
            "errorcount": 0,
            "warningcount": 0
        }
    }
}`, encode(t, body))
}

func TestCompose_EntriesOmitEmptyErrorFieldsButNotWarningFields(t *testing.T) {
	report := domain.NewReport()
	report.Validity = false
	report.Errors = []domain.ErrorEntry{
		{Line: 1, Context: "p", ErrorType: "parse-error", Message: "Value Error :  margin  Parse Error ;", SkippedString: ";", URI: "file:/tmp/x.css"},
		{},
	}
	report.Warnings = []domain.WarningEntry{{Type: domain.WarningType}}

	_, body := Compose(report, nil)
	out := encode(t, body)

	assert.Contains(t, out, `"errors": [
            {
                "line": 1,
                "context": "p",
                "errortype": "parse-error",
                "message": "Value Error :  margin  Parse Error ;"
            },
            {}
        ]`)
	assert.Contains(t, out, `"warnings": [
            {
                "line": 0,
                "context": "",
                "type": "warning",
                "message": ""
            }
        ]`)
	assert.NotContains(t, out, "skippedstring")
	assert.NotContains(t, out, "uri")
}

func TestCompose_Errors(t *testing.T) {
	_, profileErr := domain.NewValidationRequest(domain.RawRequest{CSS: "a{}", Profile: ptr("invalid_profile")}, domain.DefaultCatalog())

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "bad request",
			err:    domain.BadRequest(),
			status: http.StatusBadRequest,
			body: `{
    "error": "Send CSS via POST in the \"css\" field with optional parameters"
}`,
		},
		{
			name:   "invalid parameter",
			err:    profileErr,
			status: http.StatusBadRequest,
			body: `{
    "error": "Invalid profile. Valid values: css1, css2, css21, css3, css3svg, svg, svgbasic, svgtiny, atsc-tv, mobile, tv"
}`,
		},
		{
			name:   "tool error keeps 200",
			err:    domain.ToolError("No output or error captured", 1, nil),
			status: http.StatusOK,
			body: `{
    "error": "Error validating CSS",
    "details": "No output or error captured",
    "exit_code": 1
}`,
		},
		{
			name:   "execution failure",
			err:    domain.ExecutionFailure(errors.New("fork/exec /usr/bin/java: permission denied")),
			status: http.StatusInternalServerError,
			body: `{
    "error": "Failed to execute validator",
    "details": "fork/exec /usr/bin/java: permission denied",
    "exit_code": null
}`,
		},
		{
			name:   "unclassified error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body: `{
    "error": "Failed to execute validator",
    "details": "boom",
    "exit_code": null
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Compose(nil, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, encode(t, body))
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "bad_request", Outcome(domain.BadRequest()))
	assert.Equal(t, "validation_tool_error", Outcome(domain.ToolError("x", 1, nil)))
	assert.Equal(t, "execution_failure", Outcome(errors.New("boom")))
}

func TestEncodeJSON_DoesNotEscape(t *testing.T) {
	out := encode(t, domain.ErrorBody{Error: `a > b & c <d> 日本語`})
	assert.Equal(t, "{\n    \"error\": \"a > b & c <d> 日本語\"\n}", out)
}

func TestEncodeJSON_IsDeterministic(t *testing.T) {
	report := domain.NewReport()
	report.Errors = append(report.Errors, domain.ErrorEntry{Line: 3, Message: "x"})
	assert.Equal(t, encode(t, domain.ReportEnvelope{CSSValidation: report}), encode(t, domain.ReportEnvelope{CSSValidation: report}))
}
