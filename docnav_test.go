package docnav_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docnav"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docnav.Errorf(docnav.ENOTFOUND, "document %q not found", "/cloud/intro")

	assert.Equal(t, docnav.ENOTFOUND, docnav.ErrorCode(err))
	assert.Equal(t, "document \"/cloud/intro\" not found", docnav.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docnav.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docnav.EINTERNAL, docnav.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docnav.ErrorMessage(nil))
}
