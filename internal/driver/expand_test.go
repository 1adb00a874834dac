package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpand_HappyPath(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "other.defmod", "mod other { fn method(_: u64, _: u8) -> u32; }\n")

	res, err := Expand(path, ExpandOptions{MaxDiagnostics: 100})
	require.NoError(t, err)
	assert.False(t, res.Bag.HasErrors())

	out := string(res.Output)
	assert.True(t, strings.HasPrefix(out, GeneratedHeader+"\n"))
	assert.Contains(t, out, "mod other;")
	assert.Contains(t, out, "const _ASSERT_METHOD_0: fn(u64, u8) -> u32 = other::method;")
	assert.Equal(t, 1, res.Stats.Modules)
	assert.Equal(t, 1, res.Stats.ModStmts)
	assert.Equal(t, 1, res.Stats.Assertions)
}

func TestExpand_ParseErrorNoOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "bad.defmod", "mod 123;\n")

	res, err := Expand(path, ExpandOptions{MaxDiagnostics: 100})
	require.NoError(t, err)
	assert.True(t, res.Bag.HasErrors())
	assert.Empty(t, res.Output, "broken input must not produce code")
}

func TestExpand_GenErrorNoOutput(t *testing.T) {
	res, err := ExpandContent("bad.defmod", []byte("mod m { fn bad() { } }"), ExpandOptions{MaxDiagnostics: 100})
	require.NoError(t, err)
	assert.True(t, res.Bag.HasErrors())
	assert.Empty(t, res.Output)
}

func TestExpand_CacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	path := writeInput(t, dir, "m.defmod", "mod m { fn f() -> u8; }\n")

	first, err := Expand(path, ExpandOptions{MaxDiagnostics: 100, Cache: cache})
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := Expand(path, ExpandOptions{MaxDiagnostics: 100, Cache: cache})
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestExpand_WarningsNotCached(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	// легаси-параметр даёт warning: такой прогон в кэш не попадает
	path := writeInput(t, dir, "w.defmod", "mod m { fn f(u32); }\n")

	first, err := Expand(path, ExpandOptions{MaxDiagnostics: 100, Cache: cache})
	require.NoError(t, err)
	assert.True(t, first.Bag.HasWarnings())
	assert.NotEmpty(t, first.Output)

	second, err := Expand(path, ExpandOptions{MaxDiagnostics: 100, Cache: cache})
	require.NoError(t, err)
	assert.False(t, second.CacheHit, "diagnostics must be replayed, not swallowed by the cache")
	assert.True(t, second.Bag.HasWarnings())
}

func TestOutPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "x.rs"), OutPathFor(filepath.Join("a", "b", "x.defmod"), ""))
	assert.Equal(t, filepath.Join("out", "x.rs"), OutPathFor(filepath.Join("a", "b", "x.defmod"), "out"))
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "a.defmod", "mod a { fn x(); }\n")
	writeInput(t, dir, "b.defmod", "pub mod b;\n")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeInput(t, sub, "c.defmod", "mod c { type T; }\n")

	results, err := ExpandDir(context.Background(), dir, DirOptions{MaxDiagnostics: 100, Jobs: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// порядок детерминирован: пути отсортированы
	assert.Equal(t, filepath.Join(dir, "a.defmod"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.defmod"), results[1].Path)
	assert.Equal(t, filepath.Join(sub, "c.defmod"), results[2].Path)

	for _, r := range results {
		require.NotNil(t, r.Result)
		assert.False(t, r.Result.Bag.HasErrors())
		assert.NotEmpty(t, r.Result.Output)
		assert.Equal(t, ".rs", filepath.Ext(r.OutPath))
	}
}

func TestExpandDir_Empty(t *testing.T) {
	results, err := ExpandDir(context.Background(), t.TempDir(), DirOptions{MaxDiagnostics: 10})
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	res, err := ExpandContent("m.defmod", []byte("mod m;"), ExpandOptions{MaxDiagnostics: 10})
	require.NoError(t, err)

	outPath := filepath.Join(dir, "gen", "m.rs")
	require.NoError(t, res.WriteOutput(outPath))
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, res.Output, data)
}
