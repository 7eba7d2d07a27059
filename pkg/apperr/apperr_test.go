package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFoundf("nope")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validationf("bad")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(PersistenceWrap(errors.New("x"), "db down")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("raw")))
}

func TestStatusOfWrapped(t *testing.T) {
	err := fmt.Errorf("while handling request: %w", NotFoundf("nope"))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestMessageOfHidesRawErrors(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", MessageOf(errors.New("pq: secret dsn")))
	assert.Equal(t, "db down", MessageOf(PersistenceWrap(errors.New("pq: secret dsn"), "db down")))
}

func TestFromDB(t *testing.T) {
	e := FromDB(gorm.ErrRecordNotFound, "User not found!")
	assert.Equal(t, NotFound, e.Kind)
	assert.Equal(t, "User not found!", e.Message)

	e = FromDB(errors.New("disk full"), "User not found!")
	assert.Equal(t, Persistence, e.Kind)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := PersistenceWrap(cause, "db error")
	assert.ErrorIs(t, err, cause)
}
