package ifpa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func TestParams_Clone(t *testing.T) {
	t.Parallel()

	var empty ifpa.Params
	assert.Nil(t, empty.Clone())

	original := ifpa.Params{"name": "Zach"}
	clone := original.Clone()
	clone["name"] = "Keith"

	assert.Equal(t, "Zach", original["name"])
}

func TestParams_Keys(t *testing.T) {
	t.Parallel()

	params := ifpa.Params{"start_pos": 0, "count": 50, "name": "x"}
	assert.Equal(t, []string{"count", "name", "start_pos"}, params.Keys())
}

func TestParams_Values(t *testing.T) {
	t.Parallel()

	params := ifpa.Params{
		"count":  25,
		"name":   "Bowen Kerins",
		"active": true,
		"ratio":  1.5,
	}

	values := params.Values()
	assert.Equal(t, "25", values.Get("count"))
	assert.Equal(t, "Bowen Kerins", values.Get("name"))
	assert.Equal(t, "true", values.Get("active"))
	assert.Equal(t, "1.5", values.Get("ratio"))
	assert.Equal(t, "active=true&count=25&name=Bowen+Kerins&ratio=1.5", values.Encode())
}

func TestFormatScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "abc", "abc"},
		{"int", 42, "42"},
		{"int32", int32(7), "7"},
		{"int64", int64(-3), "-3"},
		{"whole float", 2.0, "2"},
		{"fraction", 0.25, "0.25"},
		{"bool", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ifpa.FormatScalar(tt.value))
		})
	}
}
