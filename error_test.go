package sitemapper_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/sitemapper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitemapper.Errorf(sitemapper.ENOTFOUND, "crawl %q not found", "abc")

	assert.Equal(t, sitemapper.ENOTFOUND, sitemapper.ErrorCode(err))
	assert.Equal(t, "crawl \"abc\" not found", sitemapper.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("seed: %w", sitemapper.Errorf(sitemapper.EINVALID, "bad url"))

	assert.Equal(t, sitemapper.EINVALID, sitemapper.ErrorCode(err))
	assert.Equal(t, "bad url", sitemapper.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, sitemapper.EINTERNAL, sitemapper.ErrorCode(err))
	assert.Equal(t, "Internal error", sitemapper.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitemapper.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitemapper.ErrorMessage(nil))
}
