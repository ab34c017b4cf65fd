package highscore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileIsZero(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "hs.yaml"))
	require.NoError(t, err)
	assert.Zero(t, s.Best())
}

func TestSubmitOnlyRaises(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hs.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	ok, err := s.Submit(1200)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Submit(800)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Submit(1200)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1200, s.Best())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1200, reopened.Best())
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("best: [1, 2"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("best: -5\n"), 0o644))
	_, err = Open(path)
	assert.Error(t, err)
}

func TestSubmitFailureKeepsBest(t *testing.T) {
	// A directory at the target path makes the rename fail.
	path := filepath.Join(t.TempDir(), "hs.yaml")
	require.NoError(t, os.Mkdir(path, 0o755))
	s := &Store{path: path, rec: record{Best: 300}, now: time.Now}

	ok, err := s.Submit(500)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, 300, s.Best())
}

func TestConcurrentSubmitKeepsMaximum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := s.Submit(score * 100)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 2000, s.Best())
	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2000, reopened.Best())
}
