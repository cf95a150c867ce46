package ml

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")

	src, err := NewNetwork(3, 2, 5, 2, WithSeed(21))
	require.NoError(t, err)
	require.NoError(t, src.SaveToFile(path))

	dst, err := NewNetwork(3, 2, 5, 2, WithSeed(22))
	require.NoError(t, err)
	require.NoError(t, dst.LoadFromFile(path))
	assert.Equal(t, src.Dump(), dst.Dump())

	in := []float64{0.3, -2, 7}
	want, err := src.Forward(in)
	require.NoError(t, err)
	got, err := dst.Forward(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeTopologyMismatch(t *testing.T) {
	src, err := NewNetwork(3, 2, 5, 2, WithSeed(1))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, src.Encode(&buf))

	other, err := NewNetwork(3, 2, 5, 3, WithSeed(2))
	require.NoError(t, err)
	before := other.Dump()

	err = other.Decode(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "architecture mismatch")
	assert.Equal(t, before, other.Dump())
}

func TestLoadFromFileErrors(t *testing.T) {
	nw, err := NewNetwork(1, 1, 1, 1, WithSeed(1))
	require.NoError(t, err)

	dir := t.TempDir()
	assert.Error(t, nw.LoadFromFile(filepath.Join(dir, "missing.gob")))

	corrupt := filepath.Join(dir, "corrupt.gob")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a gob stream"), 0o644))
	err = nw.LoadFromFile(corrupt)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt.gob")
}
