package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-admin/internal/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAsset_ServesStoredBlob(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.blobs.Put(context.Background(), []byte("blob-bytes"))
	require.NoError(t, err)

	w := env.do(t, httptest.NewRequest(http.MethodGet, assets.URI(id), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("blob-bytes"), w.Body.Bytes())
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
}

func TestGetAsset_UnknownIDIs404(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, httptest.NewRequest(http.MethodGet, "/assets/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
