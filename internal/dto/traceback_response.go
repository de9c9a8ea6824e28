package dto

import "traceback-explainer/internal/model"

const NoErrorsMessage = "No errors found in log."

// ParseErrorsResponse holds either Errors or Message, never both.
type ParseErrorsResponse struct {
	Errors  []model.ExplainedError `json:"errors,omitempty"`
	Message string                 `json:"message,omitempty"`
}
