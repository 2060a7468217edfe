package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ifpahttp "github.com/fivetwenty-io/ifpa-client/internal/http"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

const testURL = "https://api.ifpapinball.com/player/1"

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClassify_ErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantBody    any
	}{
		{
			name:        "message key",
			status:      http.StatusBadRequest,
			body:        `{"message": "Invalid count", "error": "ignored"}`,
			wantMessage: "Invalid count",
			wantBody:    map[string]any{"message": "Invalid count", "error": "ignored"},
		},
		{
			name:        "error key",
			status:      http.StatusUnauthorized,
			body:        `{"error": "API key missing"}`,
			wantMessage: "API key missing",
			wantBody:    map[string]any{"error": "API key missing"},
		},
		{
			name:        "detail key",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail": "bad date"}`,
			wantMessage: "bad date",
			wantBody:    map[string]any{"detail": "bad date"},
		},
		{
			name:        "JSON without message keys",
			status:      http.StatusInternalServerError,
			body:        `{"status": "broken"}`,
			wantMessage: `{"status": "broken"}`,
			wantBody:    map[string]any{"status": "broken"},
		},
		{
			name:        "plain text",
			status:      http.StatusBadGateway,
			body:        "upstream unavailable",
			wantMessage: "upstream unavailable",
			wantBody:    "upstream unavailable",
		},
		{
			name:        "empty body",
			status:      http.StatusServiceUnavailable,
			body:        "",
			wantMessage: "HTTP 503 error",
			wantBody:    "",
		},
		{
			name:        "message and code override status",
			status:      http.StatusInternalServerError,
			body:        `{"message": "X", "code": "404"}`,
			wantStatus:  http.StatusNotFound,
			wantMessage: "X",
			wantBody:    map[string]any{"message": "X", "code": "404"},
		},
		{
			name:        "non-numeric code keeps status",
			status:      http.StatusInternalServerError,
			body:        `{"message": "X", "code": "oops"}`,
			wantMessage: "X",
			wantBody:    map[string]any{"message": "X", "code": "oops"},
		},
		{
			name:        "JSON array",
			status:      http.StatusNotFound,
			body:        `["nope"]`,
			wantMessage: `["nope"]`,
			wantBody:    []any{"nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw, err := ifpahttp.Classify(tt.status, []byte(tt.body), testURL, nil)
			assert.Nil(t, raw)

			var apiErr *ifpa.APIError
			require.ErrorAs(t, err, &apiErr)

			wantStatus := tt.status
			if tt.wantStatus != 0 {
				wantStatus = tt.wantStatus
			}

			assert.Equal(t, wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantBody, apiErr.Body)
			assert.Equal(t, testURL, apiErr.RequestURL)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClassify_Success(t *testing.T) {
	t.Parallel()

	t.Run("object body", func(t *testing.T) {
		t.Parallel()

		raw, err := ifpahttp.Classify(http.StatusOK, []byte(` {"player": []} `), testURL, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"player": []}`, string(raw))
	})

	t.Run("array body", func(t *testing.T) {
		t.Parallel()

		raw, err := ifpahttp.Classify(http.StatusOK, []byte(`[1, 2]`), testURL, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `[1, 2]`, string(raw))
	})

	t.Run("message without code is data", func(t *testing.T) {
		t.Parallel()

		raw, err := ifpahttp.Classify(http.StatusOK, []byte(`{"message": "ok", "results": []}`), testURL, nil)
		require.NoError(t, err)
		assert.NotNil(t, raw)
	})

	for _, body := range []string{"", "   ", "null", "<html>oops</html>"} {
		t.Run("null-like body "+body, func(t *testing.T) {
			t.Parallel()

			_, err := ifpahttp.Classify(http.StatusOK, []byte(body), testURL, ifpa.Params{"count": 1})

			var apiErr *ifpa.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
			require.ErrorIs(t, err, ifpa.ErrNullResponse)
			assert.True(t, ifpa.IsNotFound(err))
			assert.Equal(t, ifpa.Params{"count": 1}, apiErr.RequestParams)
		})
	}
}

func TestClassify_EmbeddedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"error key keeps status", `{"error": "Invalid player id"}`, http.StatusOK, "Invalid player id"},
		{"numeric code", `{"message": "Not authorized", "code": 401}`, http.StatusUnauthorized, "Not authorized"},
		{"string code", `{"message": "Missing", "code": "404"}`, http.StatusNotFound, "Missing"},
		{"unparseable code", `{"message": "Odd", "code": "E_ODD"}`, http.StatusOK, "Odd"},
		{"fractional code", `{"message": "Odd", "code": 4.5}`, http.StatusOK, "Odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ifpahttp.Classify(http.StatusOK, []byte(tt.body), testURL, nil)

			var apiErr *ifpa.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.NotNil(t, apiErr.Body)
			assert.Nil(t, apiErr.RequestParams)
		})
	}
}
