package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/tui"
	"github.com/cssbridge/cssbridge/internal/application"
	"github.com/cssbridge/cssbridge/internal/domain"
)

// ErrInvalidCSS is returned by check --strict when the validator reports errors.
var ErrInvalidCSS = errors.New("stylesheet is not valid")

func newCheckCmd(configPath *string) *cobra.Command {
	var (
		profile    string
		lang       string
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "check <file.css|->",
		Short: "Validate a local stylesheet",
		Long:  "Run the validator on a file (or stdin with -) and print the report. Exits non-zero when the validator fails, or with --strict when the CSS is invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			css, err := readSource(cmd, source)
			if err != nil {
				return err
			}

			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			raw := domain.RawRequest{CSS: css}
			if cmd.Flags().Changed("profile") {
				raw.Profile = &profile
			}
			if cmd.Flags().Changed("lang") {
				raw.Lang = &lang
			}

			svc := newValidateService(cfg, logger)
			report, vErr := svc.Validate(cmd.Context(), raw)

			if jsonOutput {
				_, body := application.Compose(report, vErr)
				data, err := application.EncodeJSON(body)
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				renderCheck(cmd.OutOrStdout(), source, report, vErr)
			}

			if vErr != nil {
				return vErr
			}
			if strict && !report.Validity {
				return ErrInvalidCSS
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", domain.DefaultProfile, "CSS profile to validate against")
	cmd.Flags().StringVar(&lang, "lang", domain.DefaultLang, "Language of validator messages")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the JSON body the HTTP endpoint would return")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the stylesheet is invalid")

	return cmd
}

func readSource(cmd *cobra.Command, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(data), nil
}

func renderCheck(w io.Writer, source string, report *domain.Report, err error) {
	if err == nil {
		fmt.Fprint(w, tui.RenderReport(source, report))
		return
	}
	var de *domain.Error
	if errors.As(err, &de) && de.Kind != domain.KindBadRequest && de.Kind != domain.KindInvalidParameter {
		fmt.Fprint(w, tui.RenderFailure(source, de))
	}
}
