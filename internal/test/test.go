package test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/rdp"
)

// ExpectErrorCode fails the test unless e is (or wraps) *rdp.Error with the expected code.
func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	var re *rdp.Error
	require.Truef(t, errors.As(e, &re), "expecting error code %d, got %v", expected, e)
	require.Equalf(t, expected, re.Code, "expecting error code %d, got %v", expected, e)
}

// ErrorCode returns the code of *rdp.Error in e, or 0.
func ErrorCode(e error) int {
	var re *rdp.Error
	if errors.As(e, &re) {
		return re.Code
	}
	return 0
}
