package apierr

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConstructorCodes(t *testing.T) {
	assert.Equal(t, 400, BadRequest("bad").Code)
	assert.Equal(t, 401, Unauthorized("no").Code)
	assert.Equal(t, 404, NotFound("gone").Code)
	assert.Equal(t, 500, Internal("boom", nil).Code)
}

func TestFrom_PreservesTypedErrors(t *testing.T) {
	nf := NotFound("video not found")
	got := From(nf)
	assert.Equal(t, 404, got.Code)
	assert.Equal(t, "video not found", got.Message)

	// survives pkg/errors wrapping
	wrapped := pkgerrors.Wrap(nf, "toggle like")
	got = From(wrapped)
	assert.Equal(t, 404, got.Code)
}

func TestFrom_UnknownErrorBecomesInternal(t *testing.T) {
	got := From(pkgerrors.New("connection reset"))
	assert.Equal(t, 500, got.Code)
	assert.Equal(t, "internal server error", got.Message)
	// cause stays attached for logging
	assert.ErrorContains(t, got, "connection reset")
}

func TestErrorString(t *testing.T) {
	e := Internal("count likes", pkgerrors.New("timeout"))
	assert.Equal(t, "count likes: timeout", e.Error())
	assert.Equal(t, "gone", NotFound("gone").Error())
}
