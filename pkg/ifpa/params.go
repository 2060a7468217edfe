package ifpa

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strconv"
)

// Scalar lists the value types a query parameter may hold. Params never
// carries nested collections, so a shallow copy fully isolates two builders.
type Scalar interface {
	~string | ~int | ~int32 | ~int64 | ~float64 | ~bool
}

// Params maps query parameter names to scalar values.
type Params map[string]any

// Clone returns an independent copy. Cloning nil yields nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}

	return maps.Clone(p)
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Values converts the mapping to flat query values.
func (p Params) Values() url.Values {
	values := url.Values{}

	for key, value := range p {
		values.Set(key, FormatScalar(value))
	}

	return values
}

// with returns a copy of p with key set to value.
func (p Params) with(key string, value any) Params {
	next := make(Params, len(p)+1)
	maps.Copy(next, p)
	next[key] = value

	return next
}

// without returns a copy of p lacking key.
func (p Params) without(key string) Params {
	next := p.Clone()
	delete(next, key)

	return next
}

// FormatScalar renders a parameter value the way it is sent on the wire.
func FormatScalar(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case int:
		return strconv.Itoa(typed)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

// normalizeScalar strips named types so stored values are plain scalars.
func normalizeScalar[V Scalar](value V) any {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int:
		return int(rv.Int())
	case reflect.Int32:
		return int32(rv.Int())
	case reflect.Int64:
		return rv.Int()
	case reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	default:
		return any(value)
	}
}
