package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"socialnino/internal/storage"
	"socialnino/internal/structures"
	"socialnino/internal/testutil"
)

func newTestStore(t *testing.T) (*storage.Store, *storage.Registry) {
	t.Helper()
	conf := &structures.Config{
		Persistence: structures.Persistence{Dir: t.TempDir()},
	}
	compressor, err := storage.NewZstdCompressor()
	require.NoError(t, err)
	store, err := storage.NewStore(conf, compressor, &testutil.MockLogger{})
	require.NoError(t, err)
	return store, storage.NewRegistry()
}
