//go:build unit || e2e

package testutil

import (
	"fmt"
	"testing"

	"fervo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs checks err against target with errs.Is, which also sees references
// attached by errs.Mark and errs.WrapAs. assert.ErrorIs only follows Unwrap chains.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if errs.Is(err, target) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("error %q does not match %q", errText(err), errText(target)), msgAndArgs...)
}

func RequireErrorIs(t testing.TB, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !AssertErrorIs(t, err, target, msgAndArgs...) {
		t.FailNow()
	}
}

func errText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
