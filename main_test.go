package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FlowyBounds/bounds"
	"FlowyBounds/config"
)

const testScene = `
name = "yard"

[[volume]]
name = "house"
kind = "box"
min = [0.0, 0.0, 0.0]
max = [10.0, 10.0, 10.0]

[[volume]]
name = "ball"
kind = "sphere"
center = [5.0, 5.0, 5.0]
radius = 1.0

[[volume]]
name = "pond"
kind = "circle"
center = [30.0, 0.0]
radius = 4.0

[[volume]]
name = "path"
kind = "rectangle"
points = [[-2.0, 1.0], [12.0, -1.0], [4.0, 0.0]]
`

type testEnv struct {
	dir    string
	config string
	scene  string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		scene:  filepath.Join(dir, "yard.toml"),
	}
	require.NoError(t, os.WriteFile(env.config, []byte("log-level = \"error\"\n"), 0o644))
	require.NoError(t, os.WriteFile(env.scene, []byte(testScene), 0o644))
	return env
}

func (env testEnv) run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", env.config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestKinds(t *testing.T) {
	out, err := newTestEnv(t).run("kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(bounds.Kinds))
	assert.Equal(t, "sphere     3D round", lines[0])
	assert.Equal(t, "rectangle  2D box", lines[3])
}

func TestFit(t *testing.T) {
	env := newTestEnv(t)
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"fit", "--kind", "box", "0,0,0", "1,2,3"}, "box{min: [0 0 0], max: [1 2 3]}"},
		{[]string{"fit", "--kind", "sphere", "--incremental", "0,0,0", "40,0,0"}, "sphere{center: [20 0 0], radius: 20}"},
		{[]string{"fit", "--kind", "circle", "--", "-3,-4", "3,4"}, "circle{center: [0 0], radius: 5}"},
		{[]string{"fit", "--kind", "rectangle", "--scalar", "int32", "--", "1.4,-2.6", "3,4"}, "rectangle{min: [1 -3], max: [3 4]}"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := env.run(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.TrimSpace(out))
		})
	}
}

func TestFit_BadPoints(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("fit", "--kind", "box", "1,2")
	assert.ErrorContains(t, err, "want 3 coordinates")

	_, err = env.run("fit", "--kind", "circle", "a,b")
	assert.Error(t, err)

	_, err = env.run("fit", "--kind", "cone", "1,2")
	assert.ErrorIs(t, err, bounds.ErrUnknownKind)
}

func TestClassify(t *testing.T) {
	env := newTestEnv(t)
	metrics := filepath.Join(env.dir, "metrics.prom")

	out, err := env.run("classify", env.scene, "--metrics-file", metrics)
	require.NoError(t, err)
	assert.Contains(t, out, "12 pairs: 1 inside, 3 intersecting, 8 outside")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bounds_pairs_total")
	assert.Contains(t, string(data), "bounds_evaluation_seconds")
}

func TestClassify_Scalars(t *testing.T) {
	env := newTestEnv(t)
	for _, scalar := range config.Scalars {
		out, err := env.run("classify", env.scene, "--scalar", scalar)
		require.NoError(t, err, scalar)
		assert.Contains(t, out, "12 pairs", scalar)
	}

	_, err := env.run("classify", env.scene, "--scalar", "uint8")
	assert.ErrorIs(t, err, config.ErrUnknownScalar)
}

func TestMerge(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.run("merge", env.scene, "--kind", "box")
	require.NoError(t, err)
	assert.Equal(t, "box{min: [-2 -4 0], max: [34 10 10]}", strings.TrimSpace(out))

	out, err = env.run("merge", env.scene, "--kind", "rectangle")
	require.NoError(t, err)
	assert.Equal(t, "rectangle{min: [-2 -4], max: [34 10]}", strings.TrimSpace(out))
}

func TestMissingConfig(t *testing.T) {
	env := newTestEnv(t)
	env.config = filepath.Join(env.dir, "missing.toml")
	_, err := env.run("kinds")
	assert.ErrorIs(t, err, os.ErrNotExist, "an explicit config path must exist")

	c, err := readConfig(env.config, false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}
