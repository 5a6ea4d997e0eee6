package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectionError(t *testing.T) {
	rej := NewRejection(IncompleteInput, "Bạn chưa nhập đầy đủ email và lời nguyện.")
	assert.Equal(t, "Bạn chưa nhập đầy đủ email và lời nguyện.", rej.Error())

	wrapped := fmt.Errorf("submit: %w", rej)
	got, ok := AsRejection(wrapped)
	require.True(t, ok)
	assert.Equal(t, IncompleteInput, got.Kind)
	assert.True(t, IsRejection(wrapped))
}

func TestNonRejection(t *testing.T) {
	assert.False(t, IsRejection(ErrItemLocked))
	_, ok := AsRejection(nil)
	assert.False(t, ok)
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("FPTPRAY_WEBHOOK_URL")
	assert.Contains(t, err.Error(), "FPTPRAY_WEBHOOK_URL")
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewNetworkError("webhook forward", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "webhook forward")
}

func TestUpstreamError(t *testing.T) {
	err := &UpstreamError{StatusCode: 502, Body: "bad gateway"}
	assert.Contains(t, err.Error(), "502")

	bare := &UpstreamError{StatusCode: 500}
	assert.Equal(t, "upstream error: 500", bare.Error())
}
