//go:build unit

package errs_test

import (
	"errors"
	"strings"
	"testing"

	"fervo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapAs(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.WrapAs(cause, "expo publish", errs.ErrIntegrationFailed)

	assert.True(t, errs.Is(err, errs.ErrIntegrationFailed))
	assert.True(t, errs.Is(err, cause))
	assert.Equal(t, "expo publish: connection reset", err.Error())
	assert.Nil(t, errs.WrapAs(nil, "noop", errs.ErrIntegrationFailed))
}

func TestWrapAs_MarkInvisibleToStdlib(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.WrapAs(cause, "expo publish", errs.ErrIntegrationFailed)

	assert.False(t, errors.Is(err, errs.ErrIntegrationFailed))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errs.Is(err, errs.ErrIntegrationFailed))
}

func TestMark_NilReturnsMark(t *testing.T) {
	assert.Same(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
}

func TestIsAny(t *testing.T) {
	err := errs.Mark(errs.New("role not allowed"), errs.ErrForbidden)

	assert.True(t, errs.IsAny(err, errs.ErrDomainValidation, errs.ErrForbidden))
	assert.False(t, errs.IsAny(err, errs.ErrDomainValidation))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)

	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "boom"))
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
