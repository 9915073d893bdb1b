package loxscan

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrSource, "loxscan: read source"},
		{ErrUnknownToken, "loxscan: unknown token"},
		{ErrUnterminatedString, "loxscan: unterminated string"},
		{ErrNumberOutOfRange, "loxscan: number out of range"},
	}
	for _, tc := range tests {
		if tc.err == nil {
			t.Fatal("sentinel should not be nil")
		}
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestSentinelErrorsWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan %q: %w", "#", ErrUnknownToken)
	if !errors.Is(wrapped, ErrUnknownToken) {
		t.Fatal("wrapped error should match ErrUnknownToken via errors.Is")
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrUnterminatedString, ErrUnknownToken) {
		t.Fatal("ErrUnterminatedString and ErrUnknownToken should be distinct")
	}
}
