package domain

// Report is the canonical form of one validator run. Field order matches the
// JSON the endpoint has always produced.
type Report struct {
	CheckedBy string         `json:"checkedby"`
	CSSLevel  string         `json:"csslevel"`
	Date      string         `json:"date"`
	Validity  bool           `json:"validity"`
	Errors    []ErrorEntry   `json:"errors"`
	Warnings  []WarningEntry `json:"warnings"`
	Result    ResultCounts   `json:"result"`
}

// NewReport returns an empty, valid report with non-nil entry slices so that
// empty lists encode as [] rather than null.
func NewReport() *Report {
	return &Report{
		Validity: true,
		Errors:   []ErrorEntry{},
		Warnings: []WarningEntry{},
	}
}

// ResultCounts are taken verbatim from the validator output. They are not
// recomputed from, and need not match, the length of Errors or Warnings.
type ResultCounts struct {
	ErrorCount   int `json:"errorcount"`
	WarningCount int `json:"warningcount"`
}

// ErrorEntry is one validator error. Empty strings and zero lines are omitted.
// URI and SkippedString are extracted but never emitted.
type ErrorEntry struct {
	Line         int    `json:"line,omitempty"`
	Context      string `json:"context,omitempty"`
	Type         string `json:"type,omitempty"`
	ErrorType    string `json:"errortype,omitempty"`
	ErrorSubtype string `json:"errorsubtype,omitempty"`
	Message      string `json:"message,omitempty"`

	URI           string `json:"-"`
	SkippedString string `json:"-"`
}

// WarningType is the constant type carried by every warning entry.
const WarningType = "warning"

// WarningEntry is one validator warning. All four keys are always present.
type WarningEntry struct {
	Line    int    `json:"line"`
	Context string `json:"context"`
	Type    string `json:"type"`
	Message string `json:"message"`

	URI string `json:"-"`
}

// ReportEnvelope wraps a report under the cssvalidation key.
type ReportEnvelope struct {
	CSSValidation *Report `json:"cssvalidation"`
}

// ErrorBody is the payload for request errors.
type ErrorBody struct {
	Error string `json:"error"`
}

// ProcessErrorBody is the payload for validator failures. ExitCode encodes as
// null when the process never ran.
type ProcessErrorBody struct {
	Error    string `json:"error"`
	Details  string `json:"details"`
	ExitCode *int   `json:"exit_code"`
}
