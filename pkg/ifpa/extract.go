package ifpa

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// resultKeys are probed in order by ExtractResults.
var resultKeys = []string{"search", "results"}

// ExtractResults locates the item list of a collection response: the "search"
// array, else the "results" array, else the document itself when it is an
// array. Any other shape yields no items.
func ExtractResults[T any](raw json.RawMessage) ([]T, error) {
	list := locateResults(raw)
	if !list.Exists() {
		return nil, nil
	}

	var items []T

	err := json.Unmarshal([]byte(list.Raw), &items)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding result items: %w", ErrUnexpectedResponse, err)
	}

	return items, nil
}

// ExtractKey returns an extraction strategy reading the array under key.
func ExtractKey[T any](key string) func(raw json.RawMessage) ([]T, error) {
	return func(raw json.RawMessage) ([]T, error) {
		list := gjson.GetBytes(raw, gjson.Escape(key))
		if !list.IsArray() {
			return nil, nil
		}

		var items []T

		err := json.Unmarshal([]byte(list.Raw), &items)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding %s items: %w", ErrUnexpectedResponse, key, err)
		}

		return items, nil
	}
}

func locateResults(raw json.RawMessage) gjson.Result {
	doc := gjson.ParseBytes(raw)

	if doc.IsObject() {
		for _, key := range resultKeys {
			if list := doc.Get(key); list.IsArray() {
				return list
			}
		}

		return gjson.Result{}
	}

	if doc.IsArray() {
		return doc
	}

	return gjson.Result{}
}

// ExtractFrom builds an extraction strategy from a typed accessor.
func ExtractFrom[R, T any](items func(response R) []T) func(raw json.RawMessage) ([]T, error) {
	return func(raw json.RawMessage) ([]T, error) {
		response, err := DecodeJSON[R](raw)
		if err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}

		return items(response), nil
	}
}
