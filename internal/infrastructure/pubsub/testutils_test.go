package pubsub

import (
	"context"
	"testing"

	"cloud.google.com/go/pubsub/pstest"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/config"
	"github.com/stretchr/testify/require"
)

const testProject = "test-project"

// newTestClient starts an in-process fake Pub/Sub server and returns a client dialing it the same
// way it would dial the emulator.
func newTestClient(t *testing.T, opts ...pstest.ServerReactorOption) *Client {
	t.Helper()
	srv := pstest.NewServer(opts...)
	t.Cleanup(func() { _ = srv.Close() })

	client, err := NewClient(context.Background(), config.ClientConfig{
		ProjectID:    testProject,
		EmulatorHost: srv.Addr,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
