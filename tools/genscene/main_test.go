package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FlowyBounds/scene"
)

func TestGenerate(t *testing.T) {
	doc := generate(rand.New(rand.NewSource(42)), 50, 100)
	require.NoError(t, doc.Validate())
	require.Len(t, doc.Volumes, 50)

	for i, e := range doc.Volumes {
		if i%5 == 4 {
			assert.GreaterOrEqual(t, len(e.Points), 2, e.Name)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, scene.Encode(&buf, doc, scene.TOML))
	decoded, err := scene.Decode(&buf, scene.TOML)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)

	volumes, err := scene.Build[float32](decoded)
	require.NoError(t, err)
	assert.Len(t, volumes, 50)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(rand.New(rand.NewSource(7)), 10, 5)
	b := generate(rand.New(rand.NewSource(7)), 10, 5)
	for i := range a.Volumes {
		a.Volumes[i].ID, b.Volumes[i].ID = [16]byte{}, [16]byte{}
	}
	assert.Equal(t, a, b)
}
