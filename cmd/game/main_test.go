package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/slingshot/internal/infrastructure/config"
)

func TestEmbeddedConfigsLoad(t *testing.T) {
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)

	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Level.Name)
	assert.Len(t, cfg.Level.Pigs, 4)
	assert.Len(t, cfg.Level.Columns, 3)
	assert.Equal(t, 1800, cfg.Physics.Display.ScreenWidth)
	assert.Len(t, cfg.Entities.Catalog(), 4)
}
