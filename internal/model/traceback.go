package model

// ErrorRecord is one frame + error line extracted from a traceback section.
type ErrorRecord struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	Function     string `json:"function"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

type ExplainedError struct {
	ErrorRecord
	SimplifiedMessage string `json:"simplified_message"`
}
