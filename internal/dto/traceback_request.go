package dto

// ParseErrorsRequest carries the raw traceback text. LogText is a pointer so
// that an empty string passes the required check.
type ParseErrorsRequest struct {
	LogText *string `json:"log_text" binding:"required"`
}
