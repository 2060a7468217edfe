package client

import (
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// isNotFound reports whether err is a 404 from the transport, including the
// synthesized 404 of a null body.
func isNotFound(err error) bool {
	return ifpa.StatusCode(err) == http.StatusNotFound
}

// notFound converts a 404 into a typed lookup error carrying the identifier.
func notFound(resource string, id int, err error) error {
	if isNotFound(err) {
		return &ifpa.NotFoundError{Resource: resource, ID: strconv.Itoa(id), Err: err}
	}

	return err
}
