package validator

import (
	"path/filepath"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// CommandBuilder assembles the validator argument vector. The result is
// passed to exec directly and never through a shell.
type CommandBuilder struct {
	base []string
	opts domain.ValidatorOptions
}

// NewCommandBuilder returns a builder that prefixes every invocation with base.
func NewCommandBuilder(base []string, opts domain.ValidatorOptions) *CommandBuilder {
	return &CommandBuilder{base: append([]string(nil), base...), opts: opts}
}

// Build returns the invocation validating the file at path with the
// request's profile and lang.
func (b *CommandBuilder) Build(req domain.ValidationRequest, path string) []string {
	args := make([]string, 0, len(b.base)+8)
	args = append(args, b.base...)
	args = append(args,
		"--profile="+req.Profile(),
		"--medium="+b.opts.Medium,
		"--output="+b.opts.Output,
		"--lang="+req.Lang(),
		"--warning="+b.opts.Warning,
	)
	if b.opts.VExtWarning {
		args = append(args, "--vextwarning=true")
	}
	if b.opts.PrintCSS {
		args = append(args, "--printCSS")
	}
	return append(args, FileURI(path))
}

// FileURI returns the file:// URI the validator expects for a local path.
func FileURI(path string) string {
	return "file://" + filepath.ToSlash(path)
}
