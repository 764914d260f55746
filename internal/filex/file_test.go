package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "nested", "coffeetime.db")

	require.NoError(t, EnsureParentDir(path))
	fi, err := os.Stat(filepath.Join(tmp, "data", "nested"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	require.NoError(t, EnsureParentDir(path), "second call is a no-op")
}

func TestEnsureParentDir_URIWithQuery(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, EnsureParentDir("file:"+filepath.Join(tmp, "db", "x.db")+"?cache=shared"))

	_, err := os.Stat(filepath.Join(tmp, "db"))
	assert.NoError(t, err)
}

func TestEnsureParentDir_NothingToDo(t *testing.T) {
	for _, dsn := range []string{"", ":memory:", "file::memory:?cache=shared", "file:x?mode=memory", "coffeetime.db"} {
		assert.NoError(t, EnsureParentDir(dsn), dsn)
	}
}

func TestEnsureParentDir_FailsIfFileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "coffeetime.db"))
	assert.ErrorContains(t, err, "mkdir")
}

func TestResolveAsset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "moka.jpg"), []byte("img"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	path, ok := ResolveAsset(dir, "moka.jpg")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "moka.jpg"), path)

	path, ok = ResolveAsset(dir, "latte.jpg")
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(dir, "latte.jpg"), path)

	_, ok = ResolveAsset(dir, "sub")
	assert.False(t, ok, "directories are not assets")

	_, ok = ResolveAsset(dir, "")
	assert.False(t, ok)

	_, ok = ResolveAsset(dir, "../moka.jpg")
	assert.False(t, ok)
}
