package tokenstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st, path
}

func TestToken(t *testing.T) {
	st, _ := tempStore(t)

	_, err := st.Get()
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, st.Set("tok-1"))
	token, err := st.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, st.Set("tok-2"))
	token, _ = st.Get()
	assert.Equal(t, "tok-2", token)

	require.NoError(t, st.Delete())
	_, err = st.Get()
	assert.ErrorIs(t, err, ErrNoToken)

	assert.NoError(t, st.Delete(), "deleting a missing token")
}

func TestTokenSurvivesReopen(t *testing.T) {
	st, path := tempStore(t)
	require.NoError(t, st.Set("persisted"))
	require.NoError(t, st.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
}
