package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")
	assert.Equal(t, "run-123", GetRunID(ctx))
}

func TestWithScript(t *testing.T) {
	ctx := WithScript(context.Background(), "groceries.yaml")
	assert.Equal(t, "groceries.yaml", GetScript(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))
	assert.Empty(t, GetScript(ctx))
}
