package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/metrics"
	"github.com/cssbridge/cssbridge/internal/application"
	"github.com/cssbridge/cssbridge/internal/domain"
)

const contentTypeJSON = "application/json"

// jsonRequest is the JSON form of a validation request. Absent fields stay nil.
type jsonRequest struct {
	CSS     string  `json:"css"`
	Profile *string `json:"profile"`
	Lang    *string `json:"lang"`
}

func (s *Server) handleValidate(c *gin.Context) {
	raw, err := readRequest(c)
	var report *domain.Report
	if err == nil {
		report, err = s.validator.Validate(c.Request.Context(), raw)
	}

	status, body := application.Compose(report, err)
	payload, encErr := application.EncodeJSON(body)
	if encErr != nil {
		s.logger.Errorw("Failed to encode response", "error", encErr)
		c.Status(http.StatusInternalServerError)
		return
	}

	outcome := application.Outcome(err)
	metrics.RecordOutcome(outcome)
	if err != nil {
		s.logger.Debugw("Validation failed", "outcome", outcome, "status", status, "error", err)
	}

	c.Data(status, contentTypeJSON, payload)
}

// readRequest extracts css, profile and lang from a POST body. Form,
// multipart and JSON bodies are accepted; anything else is a bad request.
func readRequest(c *gin.Context) (domain.RawRequest, error) {
	if c.Request.Method != http.MethodPost {
		return domain.RawRequest{}, domain.BadRequest()
	}

	if strings.HasPrefix(c.ContentType(), contentTypeJSON) {
		var body jsonRequest
		if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil || body.CSS == "" {
			return domain.RawRequest{}, domain.BadRequest()
		}
		return domain.RawRequest{CSS: body.CSS, Profile: body.Profile, Lang: body.Lang}, nil
	}

	css, ok := c.GetPostForm("css")
	if !ok || css == "" {
		return domain.RawRequest{}, domain.BadRequest()
	}
	raw := domain.RawRequest{CSS: css}
	if profile, ok := c.GetPostForm("profile"); ok {
		raw.Profile = &profile
	}
	if lang, ok := c.GetPostForm("lang"); ok {
		raw.Lang = &lang
	}
	return raw, nil
}
