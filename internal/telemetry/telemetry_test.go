package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false}, "dev")
	require.NoError(t, err)
	require.NotNil(t, p.Tracer())
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestDisabledProviderTracerIsUsable(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{}, "dev")
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
}
