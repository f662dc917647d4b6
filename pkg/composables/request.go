package composables

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/peoplekit/directory/pkg/constants"
	"github.com/peoplekit/directory/pkg/shared"
)

// UseLogger returns the request-scoped logger entry from the context.
// Panics when the logging middleware did not run; that is a wiring bug,
// not a runtime condition.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		panic("logger not found")
	}
	return logger.(*logrus.Entry)
}

// UseQuery decodes URL query parameters into v.
func UseQuery[T comparable](v T, r *http.Request) (T, error) {
	return v, shared.Decoder.Decode(v, r.URL.Query())
}

// UseForm decodes form-encoded request bodies into v.
func UseForm[T comparable](v T, r *http.Request) (T, error) {
	if err := r.ParseForm(); err != nil {
		return v, err
	}
	return v, shared.Decoder.Decode(v, r.Form)
}
