package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_callInvalidateAPI(t *testing.T) {
	var gotPath, gotAuth string
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := &Consumer{apiURL: srv.URL, apiKey: "internal-key", client: srv.Client()}

	require.NoError(t, c.callInvalidateAPI(context.Background(), 42))
	assert.Equal(t, "/internal/v1/reorder/42/invalidate", gotPath)
	assert.Equal(t, "Bearer internal-key", gotAuth)

	status = http.StatusBadGateway
	assert.Error(t, c.callInvalidateAPI(context.Background(), 42))

	// Client errors are not retried.
	status = http.StatusForbidden
	assert.NoError(t, c.callInvalidateAPI(context.Background(), 42))
}
