package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(BadRequest("nope")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(Unauthenticated("who", nil)))
	assert.Equal(t, http.StatusForbidden, StatusOf(Forbidden("no")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("gone")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Upstream("boom", nil)))
	assert.Equal(t, http.StatusBadRequest, StatusOf(ProviderPolicy("blocked", nil)))
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(Unavailable("later")))

	// unknown errors default to 500
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("raw")))
}

func TestStatusOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("context: %w", NotFound("gone"))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, "gone", MessageOf(err))
}

func TestMessageOf_UnknownErrorIsOpaque(t *testing.T) {
	err := errors.New("connection string with secrets")
	assert.Equal(t, "internal server error", MessageOf(err))
}

func TestWithStatus(t *testing.T) {
	err := Upstream("model not found", nil).WithStatus(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, CodeUpstream, err.Code)
}

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("that one thing"))
	assert.True(t, errors.Is(err, NotFound("")))
	assert.False(t, errors.Is(err, Forbidden("")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := Upstream("upload failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "socket closed")
}
