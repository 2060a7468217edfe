package ifpa

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ParamSchema is a compiled JSON Schema describing a resource's parameters.
type ParamSchema struct {
	name   string
	schema *jsonschema.Schema
}

// CompileParamSchema compiles src, a JSON Schema document.
func CompileParamSchema(name, src string) (*ParamSchema, error) {
	schema, err := jsonschema.CompileString(name+".json", src)
	if err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", name, err)
	}

	return &ParamSchema{name: name, schema: schema}, nil
}

// MustCompileParamSchema is like CompileParamSchema but panics on error. It is
// meant for package-level resource definitions.
func MustCompileParamSchema(name, src string) *ParamSchema {
	schema, err := CompileParamSchema(name, src)
	if err != nil {
		panic(err)
	}

	return schema
}

// Validate checks params and returns a *ValidationError on failure.
func (s *ParamSchema) Validate(params Params) error {
	if s == nil {
		return nil
	}

	instance, err := toJSONValue(params)
	if err != nil {
		return &ValidationError{
			Resource: s.name,
			Fields:   []FieldError{{Field: "(params)", Kind: "encoding", Message: err.Error()}},
		}
	}

	err = s.schema.Validate(instance)
	if err == nil {
		return nil
	}

	validationErr := &jsonschema.ValidationError{}
	if !errors.As(err, &validationErr) {
		return &ValidationError{
			Resource: s.name,
			Fields:   []FieldError{{Field: "(params)", Kind: "schema", Message: err.Error()}},
		}
	}

	return &ValidationError{Resource: s.name, Fields: flattenValidationError(validationErr)}
}

// toJSONValue round-trips params so the validator sees decoded JSON values.
func toJSONValue(params Params) (interface{}, error) {
	if params == nil {
		params = Params{}
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	var value interface{}

	err = json.Unmarshal(raw, &value)

	return value, err
}

// flattenValidationError collects leaf causes as field/kind pairs.
func flattenValidationError(err *jsonschema.ValidationError) []FieldError {
	if len(err.Causes) == 0 {
		field := strings.TrimPrefix(err.InstanceLocation, "/")
		if field == "" {
			field = "(params)"
		}

		return []FieldError{{
			Field:   field,
			Kind:    path.Base(err.KeywordLocation),
			Message: err.Message,
		}}
	}

	var fields []FieldError
	for _, cause := range err.Causes {
		fields = append(fields, flattenValidationError(cause)...)
	}

	return fields
}
