package sonrerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRemovedErrorUnwrap(t *testing.T) {
	cause := errors.New("econnreset")
	err := &ConnectionRemovedError{Token: 7, Cause: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "token 7")
}

func TestAddrParseErrorUnwrap(t *testing.T) {
	cause := errors.New("bad port")
	err := &AddrParseError{Raw: "localhost::", Cause: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "localhost::")
}

func TestWrapPreservesCauseChain(t *testing.T) {
	wrapped := Wrap("registering token", ErrAlreadyRegistered)
	assert.True(t, errors.Is(wrapped, ErrAlreadyRegistered))
}
