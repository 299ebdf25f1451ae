package soap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"go.uber.org/zap"

	"github.com/cssbridge/cssbridge/internal/domain"
)

var (
	// ErrNoRoot is returned for output that contains no XML element at all.
	ErrNoRoot = errors.New("validator output has no root element")
	// ErrNotWellFormed is returned when the output holds more than one root
	// element or non-whitespace text outside the root.
	ErrNotWellFormed = errors.New("validator output is not a well-formed document")
)

var (
	checkedByPath    = mustCompile("//m:checkedby")
	cssLevelPath     = mustCompile("//m:csslevel")
	datePath         = mustCompile("//m:date")
	validityPath     = mustCompile("//m:validity")
	errorCountPath   = mustCompile("//m:errorcount")
	warningCountPath = mustCompile("//m:warningcount")

	errorsPath   = mustCompile("//m:errors/m:errorlist/m:error")
	warningsPath = mustCompile("//m:warnings/m:warninglist/m:warning")

	uriPath           = mustCompile("../m:uri")
	linePath          = mustCompile("m:line")
	contextPath       = mustCompile("m:context")
	typePath          = mustCompile("m:type")
	errorTypePath     = mustCompile("m:errortype")
	errorSubtypePath  = mustCompile("m:errorsubtype")
	skippedStringPath = mustCompile("m:skippedstring")
	messagePath       = mustCompile("m:message")
)

// Translator converts the validator's SOAP 1.2 output into a domain.Report.
type Translator struct {
	logger *zap.SugaredLogger
}

var _ domain.ReportTranslator = (*Translator)(nil)

// NewTranslator returns a Translator. A nil logger disables debug output.
func NewTranslator(logger *zap.SugaredLogger) *Translator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Translator{logger: logger.Named("soap")}
}

// Translate parses output and extracts the report. It fails when the output
// is not a single well-formed XML document; absent fields take their zero
// values.
func (t *Translator) Translate(output string) (*domain.Report, error) {
	if strings.TrimSpace(output) == "" {
		return nil, ErrNoRoot
	}
	doc, err := xmlquery.Parse(strings.NewReader(output))
	if err != nil {
		return nil, fmt.Errorf("parsing validator output: %w", err)
	}
	if err := checkDocument(doc); err != nil {
		return nil, fmt.Errorf("parsing validator output: %w", err)
	}

	root := extractor{node: doc}
	report := domain.NewReport()
	report.CheckedBy = root.getString(checkedByPath)
	report.CSSLevel = root.getString(cssLevelPath)
	report.Date = root.getString(datePath)
	report.Validity = root.getBool(validityPath, true)
	report.Result.ErrorCount = root.getInt(errorCountPath, 0)
	report.Result.WarningCount = root.getInt(warningCountPath, 0)

	for _, n := range xmlquery.QuerySelectorAll(doc, errorsPath) {
		entry := errorEntry(extractor{node: n})
		t.logger.Debugw("Extracted error",
			"uri", entry.URI, "line", entry.Line, "context", entry.Context,
			"type", entry.Type, "skippedstring", entry.SkippedString, "message", entry.Message)
		report.Errors = append(report.Errors, entry)
	}

	for _, n := range xmlquery.QuerySelectorAll(doc, warningsPath) {
		entry := warningEntry(extractor{node: n})
		t.logger.Debugw("Extracted warning",
			"uri", entry.URI, "line", entry.Line, "context", entry.Context, "message", entry.Message)
		report.Warnings = append(report.Warnings, entry)
	}

	t.logger.Debugw("Translated validator output",
		"errors", len(report.Errors), "warnings", len(report.Warnings),
		"errorcount", report.Result.ErrorCount, "warningcount", report.Result.WarningCount)
	return report, nil
}

func errorEntry(x extractor) domain.ErrorEntry {
	return domain.ErrorEntry{
		Line:          x.getInt(linePath, 0),
		Context:       x.getString(contextPath),
		Type:          x.getString(typePath),
		ErrorType:     x.getString(errorTypePath),
		ErrorSubtype:  x.getString(errorSubtypePath),
		Message:       x.getTrimmed(messagePath),
		URI:           x.getString(uriPath),
		SkippedString: x.getString(skippedStringPath),
	}
}

func warningEntry(x extractor) domain.WarningEntry {
	return domain.WarningEntry{
		Line:    x.getInt(linePath, 0),
		Context: x.getString(contextPath),
		Type:    domain.WarningType,
		Message: x.getTrimmed(messagePath),
		URI:     x.getString(uriPath),
	}
}

// checkDocument rejects what the parser tolerates but XML forbids: a second
// root element or text outside the root. Text preceding the first element
// is attached by xmlquery as a sibling of the document node.
func checkDocument(doc *xmlquery.Node) error {
	var top []*xmlquery.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		top = append(top, n)
	}
	for n := doc.NextSibling; n != nil; n = n.NextSibling {
		top = append(top, n)
	}

	roots := 0
	for _, n := range top {
		switch n.Type {
		case xmlquery.ElementNode:
			roots++
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return fmt.Errorf("%w: text outside the root element", ErrNotWellFormed)
			}
		}
	}
	switch {
	case roots == 0:
		return ErrNoRoot
	case roots > 1:
		return fmt.Errorf("%w: %d root elements", ErrNotWellFormed, roots)
	}
	return nil
}
