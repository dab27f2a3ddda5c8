package usecase_test

import (
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// HTTPErrorのstatusとmessageをまとめて確認する
func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	assert.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
		assert.Equal(t, message, he.Message)
	}
}
