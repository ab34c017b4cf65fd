package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/hk97/internal/highscore"
)

func TestRenderPage(t *testing.T) {
	page := renderPage("arcade.example", 4200)
	assert.Contains(t, page, "ssh -t arcade.example -p 2222")
	assert.Contains(t, page, ">4200<")
	assert.NotContains(t, page, "{{.")
}

func TestBestScore(t *testing.T) {
	logger := log.New(io.Discard)
	assert.Zero(t, bestScore("", logger))

	path := filepath.Join(t.TempDir(), "hs.yaml")
	store, err := highscore.Open(path)
	require.NoError(t, err)
	_, err = store.Submit(900)
	require.NoError(t, err)

	assert.Equal(t, 900, bestScore(path, logger))
}
