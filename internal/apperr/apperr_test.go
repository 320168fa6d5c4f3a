package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamDefaultsToBadGateway(t *testing.T) {
	err := Upstream(0, "dial tcp: connection refused", nil)
	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, KindUpstream, err.Kind)

	err = Upstream(http.StatusUnprocessableEntity, "bad candidates", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
}

func TestFromWrapsUnknownErrorsAsStorage(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := From(fmt.Errorf("insert profile: %w", cause))

	assert.Equal(t, KindStorage, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "insert profile: disk I/O error", err.PublicMessage())
}

func TestFromKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("save contact: %w", NotFound("Profile not found"))
	err := From(wrapped)

	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "Profile not found", err.PublicMessage())
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindValidation))
}
