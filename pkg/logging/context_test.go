package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	got := FromContext(ctx)

	got.Info().Str("component", "reconciler").Msg("hello")
	assert.True(t, tl.Contains("reconciler"))
	assert.True(t, tl.Contains("hello"))
}

func TestFromContextDefaults(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context is part of the contract
}

func TestWithField(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithField(ctx, "run", "abc123")

	FromContext(ctx).Info().Msg("tagged")
	assert.True(t, tl.Contains("abc123"))
}

func TestNilLoggerFallsBack(t *testing.T) {
	ctx := WithLogger(context.Background(), nil)
	assert.Equal(t, Default(), FromContext(ctx))
}
