package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOutcome(t *testing.T) {
	before := testutil.ToFloat64(requestsTotal.WithLabelValues("ok"))
	RecordOutcome("ok")
	RecordOutcome("ok")
	assert.Equal(t, before+2, testutil.ToFloat64(requestsTotal.WithLabelValues("ok")))
}

func TestObserveValidatorRun(t *testing.T) {
	ObserveValidatorRun(RunTimeout, 10*time.Second)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(validatorRunDuration), 1)
}

func TestIncTempFileCleanupErrors(t *testing.T) {
	before := testutil.ToFloat64(tempFileCleanupErrors)
	IncTempFileCleanupErrors()
	assert.Equal(t, before+1, testutil.ToFloat64(tempFileCleanupErrors))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordOutcome("bad_request")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cssbridge_http_validation_requests_total")
}
