package document

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveBase64Image(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	payload := []byte("fake image bytes")
	b64 := base64.StdEncoding.EncodeToString(payload)

	path, err := store.SaveBase64Image(b64, "license", "DL-042")
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, written)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "license_DL-042_"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
}

func TestSaveBase64ImageStripsDataPrefix(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	b64 := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("x"))
	path, err := store.SaveBase64Image(b64, "rc", "")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveBase64ImageRejectsGarbage(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveBase64Image("not base64 at all!!!", "license", "DL-042")
	assert.ErrorIs(t, err, ErrBadImage)
}

func TestSaveBase64ImageSanitizesFilename(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	b64 := base64.StdEncoding.EncodeToString([]byte("x"))
	path, err := store.SaveBase64Image(b64, "license", "../../etc/passwd")
	require.NoError(t, err)

	assert.Equal(t, store.Dir, filepath.Dir(path))
	assert.NotContains(t, filepath.Base(path), "/")
}
