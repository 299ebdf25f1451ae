package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/tui"
	"github.com/cssbridge/cssbridge/internal/domain"
)

func sampleReport() *domain.Report {
	r := domain.NewReport()
	r.CheckedBy = "http://jigsaw.w3.org/css-validator/"
	r.CSSLevel = "css3svg"
	r.Date = "2026-10-18T09:13:02Z"
	r.Validity = false
	r.Result = domain.ResultCounts{ErrorCount: 1, WarningCount: 2}
	r.Errors = []domain.ErrorEntry{
		{Line: 1, Context: "p", ErrorType: "parse-error", Message: "Value Error :  margin  Parse Error ;"},
	}
	r.Warnings = []domain.WarningEntry{
		{Line: 4, Context: "a", Type: domain.WarningType, Message: "Same color for background-color and color"},
		{Type: domain.WarningType},
	}
	return r
}

func TestRenderReport_Header(t *testing.T) {
	output := tui.RenderReport("/home/dev/site/styles/main.css", sampleReport())
	assert.Contains(t, output, "cssbridge")
	assert.Contains(t, output, "main.css")
	assert.NotContains(t, output, "/home/dev")
	assert.Contains(t, output, "Invalid CSS")
	assert.Contains(t, output, "1 error")
	assert.Contains(t, output, "2 warnings")
}

func TestRenderReport_Findings(t *testing.T) {
	output := tui.RenderReport("main.css", sampleReport())
	assert.Contains(t, output, "Errors")
	assert.Contains(t, output, "line 1")
	assert.Contains(t, output, "parse-error")
	assert.Contains(t, output, "Value Error :  margin  Parse Error ;")
	assert.Contains(t, output, "Warnings")
	assert.Contains(t, output, "Same color for background-color and color")
	assert.Contains(t, output, "line ?")
}

func TestRenderReport_ErrorsBeforeWarnings(t *testing.T) {
	output := tui.RenderReport("main.css", sampleReport())
	assert.Less(t, strings.Index(output, "Value Error"), strings.Index(output, "Same color"))
}

func TestRenderReport_Footer(t *testing.T) {
	output := tui.RenderReport("main.css", sampleReport())
	assert.Contains(t, output, "level css3svg")
	assert.Contains(t, output, "jigsaw.w3.org")
}

func TestRenderReport_Clean(t *testing.T) {
	output := tui.RenderReport("-", domain.NewReport())
	assert.Contains(t, output, "Valid CSS")
	assert.Contains(t, output, "No issues found.")
	assert.Contains(t, output, "stdin")
	assert.Contains(t, output, "0 errors")
}

func TestRenderFailure(t *testing.T) {
	err := domain.ToolError("Error: Unable to access jarfile css-validator.jar\n", 1, nil)
	output := tui.RenderFailure("main.css", err)
	assert.Contains(t, output, domain.MsgValidationTool)
	assert.Contains(t, output, "Unable to access jarfile")
	assert.Contains(t, output, "exit code 1")
}

func TestRenderFailure_WithoutExitCode(t *testing.T) {
	err := &domain.Error{Kind: domain.KindExecutionFailure, Message: domain.MsgExecutionFailure, Details: "not found"}
	output := tui.RenderFailure("main.css", err)
	assert.Contains(t, output, "not found")
	assert.NotContains(t, output, "exit code")
}
