package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// ValidateService runs one CSS validation end to end:
// check parameters → run validator → translate SOAP output.
type ValidateService struct {
	catalog    domain.Catalog
	runner     domain.ValidatorRunner
	translator domain.ReportTranslator
	logger     *zap.SugaredLogger
}

// NewValidateService creates a new ValidateService with all required dependencies.
func NewValidateService(
	catalog domain.Catalog,
	runner domain.ValidatorRunner,
	translator domain.ReportTranslator,
	logger *zap.SugaredLogger,
) *ValidateService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ValidateService{
		catalog:    catalog,
		runner:     runner,
		translator: translator,
		logger:     logger.Named("validate"),
	}
}

// Catalog returns the allow-lists requests are checked against.
func (s *ValidateService) Catalog() domain.Catalog { return s.catalog }

// Validate returns the report for raw, or a *domain.Error describing why
// none could be produced.
func (s *ValidateService) Validate(ctx context.Context, raw domain.RawRequest) (*domain.Report, error) {
	// 1. Check parameters
	req, err := domain.NewValidationRequest(raw, s.catalog)
	if err != nil {
		return nil, err
	}

	// 2. Run the validator
	res := s.runner.Run(ctx, req)
	if !res.Ran() {
		s.logger.Errorw("Validator could not be executed", "error", res.SpawnErr)
		return nil, domain.ExecutionFailure(res.SpawnErr)
	}
	if res.TimedOut {
		details := fmt.Sprintf("validator timed out after %s", res.Duration.Round(time.Millisecond))
		s.logger.Warnw("Validator timed out", "duration", res.Duration, "exit_code", res.ExitCode)
		return nil, domain.ToolError(details, res.ExitCode, context.DeadlineExceeded)
	}

	// 3. Translate. A non-zero exit is fine as long as the output is usable.
	if res.Stdout == "" {
		s.logger.Warnw("Validator produced no output", "exit_code", res.ExitCode)
		return nil, domain.ToolError(toolDetails(res.Stderr, nil), res.ExitCode, nil)
	}
	report, err := s.translator.Translate(res.Stdout)
	if err != nil {
		s.logger.Warnw("Validator output could not be translated", "error", err, "exit_code", res.ExitCode)
		return nil, domain.ToolError(toolDetails(res.Stderr, err), res.ExitCode, err)
	}

	return report, nil
}

// toolDetails prefers the validator's stderr, then the translation error.
func toolDetails(stderr string, translateErr error) string {
	switch {
	case stderr != "":
		return stderr
	case translateErr != nil && translateErr.Error() != "":
		return translateErr.Error()
	default:
		return domain.MsgNoOutputCaptured
	}
}
