package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		err      *AppError
		sentinel *AppError
		status   int
	}{
		{NewMissingParameter("username"), ErrMissingParameter, http.StatusBadRequest},
		{NewChannelNotFound("nobody"), ErrChannelNotFound, http.StatusNotFound},
		{NewUpstreamUnavailable("search.list", errors.New("timeout")), ErrUpstreamUnavailable, http.StatusBadGateway},
		{NewUnconfigured(), ErrUnconfigured, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.NotEmpty(t, tt.err.Message)

			wrapped := fmt.Errorf("handling request: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}

	assert.False(t, errors.Is(NewChannelNotFound("x"), ErrUnconfigured))
}

func TestCauseStaysOutOfMessage(t *testing.T) {
	cause := errors.New("googleapi: Error 403: quotaExceeded")
	err := NewUpstreamUnavailable("channels.list", cause)

	assert.NotContains(t, err.Message, "quotaExceeded")
	assert.Contains(t, err.Error(), "quotaExceeded")
	assert.ErrorIs(t, err, cause)
}

func TestClassify(t *testing.T) {
	notFound := NewChannelNotFound("x")
	assert.Same(t, notFound, Classify(fmt.Errorf("lookup: %w", notFound)))

	raw := errors.New("connection reset")
	classified := Classify(raw)
	assert.Equal(t, CodeUpstreamUnavailable, classified.Code)
	assert.ErrorIs(t, classified, raw)
}
