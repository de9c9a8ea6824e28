package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"traceback-explainer/internal/dto"
	"traceback-explainer/internal/explainer"
	"traceback-explainer/internal/model"
	"traceback-explainer/internal/parser"
)

type TracebackService interface {
	ParseErrors(ctx context.Context, logText string) *dto.ParseErrorsResponse
}

type tracebackService struct {
	parser    parser.TracebackParser
	explainer explainer.Explainer
}

func NewTracebackService(p parser.TracebackParser, e explainer.Explainer) TracebackService {
	return &tracebackService{
		parser:    p,
		explainer: e,
	}
}

// ParseErrors never fails: a log either yields records, each with an
// explanation, or the no-errors message.
func (s *tracebackService) ParseErrors(ctx context.Context, logText string) *dto.ParseErrorsResponse {
	startTime := time.Now()

	records := s.parser.Parse(logText)
	if len(records) == 0 {
		log.Debug().Int("log_bytes", len(logText)).Msg("No traceback frames found in log")
		return &dto.ParseErrorsResponse{Message: dto.NoErrorsMessage}
	}

	explained := make([]model.ExplainedError, len(records))
	for i, record := range records {
		explained[i] = model.ExplainedError{
			ErrorRecord:       record,
			SimplifiedMessage: s.explainer.Explain(record.ErrorType, record.ErrorMessage),
		}
	}

	log.Info().
		Int("log_bytes", len(logText)).
		Int("errors_found", len(explained)).
		Dur("duration", time.Since(startTime)).
		Msg("Parsed traceback log")

	return &dto.ParseErrorsResponse{Errors: explained}
}
