package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())
	assert.True(t, stderrors.Is(err, ErrInvalidInput))

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.True(t, stderrors.Is(notFound, ErrNotFound))

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Code)
	assert.True(t, stderrors.Is(badReq, ErrInvalidInput))

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Code)
	assert.True(t, stderrors.Is(conflict, ErrAlreadyExists))

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)
	assert.True(t, stderrors.Is(unauth, ErrUnauthorized))

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.True(t, stderrors.Is(forbidden, ErrForbidden))

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "db down", internal.Error())

	bare := &AppError{Code: http.StatusTeapot, Message: "no wrapped error"}
	assert.Equal(t, "no wrapped error", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
