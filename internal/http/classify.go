package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// messageKeys are probed in order for a readable message in error bodies.
var messageKeys = []string{"message", "error", "detail"}

var nullBody = json.RawMessage("null")

// Classify turns one received response into the decoded body or an
// *ifpa.APIError. It performs no I/O.
func Classify(status int, body []byte, requestURL string, params ifpa.Params) (json.RawMessage, error) {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, statusError(status, body, requestURL, params)
	}

	raw := bytes.TrimSpace(body)
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		raw = nullBody
	}

	apiErr := embeddedError(status, raw, requestURL, params)
	if apiErr != nil {
		return nil, apiErr
	}

	return json.RawMessage(raw), nil
}

// statusError builds the error for a non-2xx response.
func statusError(status int, body []byte, requestURL string, params ifpa.Params) *ifpa.APIError {
	text := string(body)
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) == 0 || !gjson.ValidBytes(trimmed) {
		message := text
		if strings.TrimSpace(message) == "" {
			message = fmt.Sprintf("HTTP %d error", status)
		}

		return newAPIError(message, status, text, requestURL, params)
	}

	message := text

	doc := gjson.ParseBytes(trimmed)
	if doc.IsObject() {
		for _, key := range messageKeys {
			if value := doc.Get(key); value.Exists() {
				message = value.String()

				break
			}
		}

		if doc.Get("message").Exists() {
			if parsed, ok := parseCode(doc.Get("code")); ok {
				status = parsed
			}
		}
	}

	return newAPIError(message, status, decode(trimmed), requestURL, params)
}

// embeddedError detects the error encodings IFPA uses inside 2xx bodies.
func embeddedError(status int, raw []byte, requestURL string, params ifpa.Params) *ifpa.APIError {
	if bytes.Equal(raw, nullBody) {
		apiErr := newAPIError(ifpa.ErrNullResponse.Error(), http.StatusNotFound, nil, requestURL, params)
		apiErr.Err = ifpa.ErrNullResponse

		return apiErr
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil
	}

	if errValue := doc.Get("error"); errValue.Exists() {
		return newAPIError(errValue.String(), status, decode(raw), requestURL, params)
	}

	message, code := doc.Get("message"), doc.Get("code")
	if message.Exists() && code.Exists() {
		if parsed, ok := parseCode(code); ok {
			status = parsed
		}

		return newAPIError(message.String(), status, decode(raw), requestURL, params)
	}

	return nil
}

// parseCode reads an integer status from a JSON number or numeric string.
func parseCode(code gjson.Result) (int, bool) {
	switch code.Type {
	case gjson.Number:
		if code.Num != math.Trunc(code.Num) {
			return 0, false
		}

		return int(code.Num), true
	case gjson.String:
		parsed, err := strconv.Atoi(strings.TrimSpace(code.Str))
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}

func decode(raw []byte) any {
	var value any

	err := json.Unmarshal(raw, &value)
	if err != nil {
		return string(raw)
	}

	return value
}

func newAPIError(message string, status int, body any, requestURL string, params ifpa.Params) *ifpa.APIError {
	return &ifpa.APIError{
		Message:       message,
		StatusCode:    status,
		Body:          body,
		RequestURL:    requestURL,
		RequestParams: requestParams(params),
	}
}

// requestParams is nil only when no parameters were supplied.
func requestParams(params ifpa.Params) ifpa.Params {
	if len(params) == 0 {
		return nil
	}

	return params.Clone()
}
