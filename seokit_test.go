package seokit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/seokit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := seokit.Errorf(seokit.EINVALID, "site %q has no url", "blog")

	assert.Equal(t, seokit.EINVALID, seokit.ErrorCode(err))
	assert.Equal(t, "site \"blog\" has no url", seokit.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seokit.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seokit.ErrorMessage(nil))
}

func TestErrorCode_WrappedErrors(t *testing.T) {
	t.Parallel()

	t.Run("wrapped application error keeps its code", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading: %w", seokit.Errorf(seokit.ENOTFOUND, "missing"))

		assert.Equal(t, seokit.ENOTFOUND, seokit.ErrorCode(err))
		assert.Equal(t, "missing", seokit.ErrorMessage(err))
	})

	t.Run("date parse error is invalid input", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("unknown unit")
		err := fmt.Errorf("adding item: %w", &seokit.DateParseError{Expr: "+3 blorps", Err: cause})

		assert.Equal(t, seokit.EINVALID, seokit.ErrorCode(err))
		assert.Contains(t, seokit.ErrorMessage(err), `"+3 blorps"`)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unknown errors are internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, seokit.EINTERNAL, seokit.ErrorCode(err))
		assert.Equal(t, "Internal error", seokit.ErrorMessage(err))
	})
}
