package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traceback-explainer/internal/controller"
	"traceback-explainer/internal/explainer"
	"traceback-explainer/internal/nlp"
	"traceback-explainer/internal/parser"
	"traceback-explainer/internal/service"
)

type wordTokenizer struct{}

func (wordTokenizer) Tokenize(text string) []nlp.Token {
	var tokens []nlp.Token
	for _, f := range strings.Fields(text) {
		tokens = append(tokens, nlp.Token{Text: f, IsPunct: nlp.IsPunctuation(f)})
	}
	return tokens
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := service.NewTracebackService(parser.NewTracebackParser(), explainer.NewExplainer(wordTokenizer{}))
	controller.RegisterTracebackRoutes(router, controller.NewTracebackController(svc))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/parse_errors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func logTextBody(t *testing.T, logText string) string {
	t.Helper()
	b, err := json.Marshal(map[string]string{"log_text": logText})
	require.NoError(t, err)
	return string(b)
}

func TestParseErrors_ReturnsErrors(t *testing.T) {
	router := newRouter()
	body := logTextBody(t, "File \"a.py\", line 10, in foo\n  x = 1/0\nZeroDivisionError: division by zero")

	w := postJSON(t, router, body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"errors": [{
			"file": "a.py",
			"line": 10,
			"function": "foo",
			"error_type": "ZeroDivisionError",
			"error_message": "division by zero",
			"simplified_message": "You are trying to divide by zero, which is not allowed."
		}]
	}`, w.Body.String())
}

func TestParseErrors_UnknownType(t *testing.T) {
	router := newRouter()
	body := logTextBody(t, "File \"svc.py\", line 3, in run\n  boom()\nCustomError: something broke now")

	w := postJSON(t, router, body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "This error occurred because: something broke now", resp.Errors[0]["simplified_message"])
}

func TestParseErrors_NoErrors(t *testing.T) {
	router := newRouter()

	for _, logText := range []string{"", "all good, nothing failed"} {
		w := postJSON(t, router, logTextBody(t, logText))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "No errors found in log."}`, w.Body.String())
	}
}

func TestParseErrors_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Not JSON", "log_text=abc"},
		{"Missing Field", `{}`},
		{"Null Field", `{"log_text": null}`},
		{"Wrong Type", `{"log_text": 42}`},
	}

	router := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, strings.HasPrefix(resp["message"].(string), "Invalid request body: "))
			assert.Nil(t, resp["data"])
		})
	}
}

func TestParseErrors_OnlyPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/parse_errors", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
