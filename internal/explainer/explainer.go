package explainer

import (
	"strings"

	"github.com/rs/zerolog/log"

	"traceback-explainer/internal/nlp"
)

// FallbackPrefix starts every explanation derived from the message text.
const FallbackPrefix = "This error occurred because: "

var errorExplanations = map[string]string{
	"FileNotFoundError":   "The system cannot find the file. Please check if it exists in the correct directory.",
	"PermissionError":     "Permission denied. Try running the script with admin privileges or check file permissions.",
	"KeyError":            "A dictionary key is missing. Ensure the key exists before accessing it.",
	"TypeError":           "Invalid data type used. Check if you are using the correct type.",
	"ValueError":          "Incorrect value provided. Verify that the input is valid.",
	"IndexError":          "Trying to access an index that doesn't exist in the list.",
	"ZeroDivisionError":   "You are trying to divide by zero, which is not allowed.",
	"NameError":           "A variable or function name is undefined. Ensure it is declared before use.",
	"ModuleNotFoundError": "The required module is missing. Install it using `pip install <module_name>`.",
	"ImportError":         "The module or function being imported does not exist. Check the spelling and module documentation.",
}

// Lookup returns the canned explanation for a known error type.
func Lookup(errorType string) (string, bool) {
	explanation, ok := errorExplanations[errorType]
	return explanation, ok
}

type Explainer interface {
	Explain(errorType, errorMessage string) string
}

type explainer struct {
	tokenizer nlp.Tokenizer
}

func NewExplainer(tokenizer nlp.Tokenizer) Explainer {
	return &explainer{tokenizer: tokenizer}
}

func (e *explainer) Explain(errorType, errorMessage string) string {
	if explanation, ok := Lookup(errorType); ok {
		return explanation
	}

	tokens := e.tokenizer.Tokenize(errorMessage)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsPunct {
			words = append(words, tok.Text)
		}
	}

	log.Debug().Str("error_type", errorType).Int("tokens", len(tokens)).Int("kept", len(words)).Msg("Built fallback explanation")
	return FallbackPrefix + strings.Join(words, " ")
}
