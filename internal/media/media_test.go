package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)

	url, err := s.Save("cat.jpg", strings.NewReader("binary"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"), "url = %s", url)
	assert.True(t, strings.HasSuffix(url, "_cat.jpg"), "url = %s", url)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, s.Remove(url))
	entries, err = os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveExternalURLIsNoOp(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)

	assert.NoError(t, s.Remove("https://photos.example.com/cat.jpg"))
	assert.NoError(t, s.Remove("/media/../escape"))
	assert.NoError(t, s.Remove("/media/never-existed.jpg"))
}

func TestSaveSanitizesFilename(t *testing.T) {
	s, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)

	url, err := s.Save("../../etc/pass wd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, url, "..")
	assert.NotContains(t, url, " ")

	name := strings.TrimPrefix(url, "/media/")
	_, err = os.Stat(filepath.Join(s.Dir(), name))
	assert.NoError(t, err)
}
