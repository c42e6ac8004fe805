package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV_PutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "aiva.db")

	kv, err := Open(path)
	require.NoError(t, err)

	value, err := kv.Get(ctx, "aiva_icps")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, kv.Put(ctx, "aiva_icps", []byte(`[1]`)))
	require.NoError(t, kv.Put(ctx, "aiva_icps", []byte(`[1,2]`)))

	value, err = kv.Get(ctx, "aiva_icps")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), value)

	require.NoError(t, kv.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err = reopened.Get(ctx, "aiva_icps")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), value)

	require.NoError(t, reopened.Clear(ctx, "aiva_icps"))
	value, err = reopened.Get(ctx, "aiva_icps")
	require.NoError(t, err)
	assert.Nil(t, value)
}
