package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/validator"
	"github.com/cssbridge/cssbridge/internal/domain"
)

func newRequest(t *testing.T, css, profile, lang string) domain.ValidationRequest {
	t.Helper()
	req, err := domain.NewValidationRequest(domain.RawRequest{CSS: css, Profile: &profile, Lang: &lang}, domain.DefaultCatalog())
	require.NoError(t, err)
	return req
}

func TestCommandBuilder_Build(t *testing.T) {
	b := validator.NewCommandBuilder(
		[]string{"java", "-jar", "/opt/css-validator/css-validator.jar"},
		domain.DefaultValidatorOptions(),
	)
	args := b.Build(newRequest(t, "a{}", "css21", "pt-BR"), "/tmp/css_123.css")

	assert.Equal(t, []string{
		"java", "-jar", "/opt/css-validator/css-validator.jar",
		"--profile=css21",
		"--medium=all",
		"--output=soap12",
		"--lang=pt-BR",
		"--warning=2",
		"--vextwarning=true",
		"file:///tmp/css_123.css",
	}, args)
}

func TestCommandBuilder_NeverIncludesPrintCSSByDefault(t *testing.T) {
	b := validator.NewCommandBuilder([]string{"css-validator"}, domain.DefaultValidatorOptions())
	args := b.Build(newRequest(t, "a{}", "css3", "en"), "/tmp/x.css")
	assert.NotContains(t, args, "--printCSS")
}

func TestCommandBuilder_OptionalFlags(t *testing.T) {
	opts := domain.DefaultValidatorOptions()
	opts.VExtWarning = false
	opts.PrintCSS = true
	args := validator.NewCommandBuilder([]string{"v"}, opts).Build(newRequest(t, "a{}", "css3", "en"), "/tmp/x.css")

	assert.NotContains(t, args, "--vextwarning=true")
	assert.Equal(t, "--printCSS", args[len(args)-2])
	assert.Equal(t, "file:///tmp/x.css", args[len(args)-1])
}

func TestCommandBuilder_DoesNotAliasBase(t *testing.T) {
	base := []string{"java", "-jar", "v.jar"}
	b := validator.NewCommandBuilder(base, domain.DefaultValidatorOptions())
	base[0] = "sh"

	args := b.Build(newRequest(t, "a{}", "css3", "en"), "/tmp/x.css")
	assert.Equal(t, "java", args[0])
}

func TestCommandBuilder_IsDeterministic(t *testing.T) {
	b := validator.NewCommandBuilder([]string{"v"}, domain.DefaultValidatorOptions())
	req := newRequest(t, "a{}", "svgtiny", "ja")
	assert.Equal(t, b.Build(req, "/tmp/a.css"), b.Build(req, "/tmp/a.css"))
}

func TestFileURI(t *testing.T) {
	assert.Equal(t, "file:///var/tmp/css_1.css", validator.FileURI("/var/tmp/css_1.css"))
}
