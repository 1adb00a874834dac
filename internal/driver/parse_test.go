package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defmod/internal/testkit"
)

func TestParse_SpanInvariants(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "api.defmod",
		"#[cfg(unix)] = \"~nix\"\npub mod api {\n\tfn method(_: u64) -> u32;\n\ttype Ctx { fn get(&self) -> u32; }\n}\nmod fwd;\n")

	res, err := Parse(path, 100)
	require.NoError(t, err)
	assert.False(t, res.Bag.HasErrors())
	require.Len(t, res.Modules, 2)

	require.NoError(t, testkit.CheckSpanInvariants(res.Modules, res.File))
}

func TestParse_ReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "bad.defmod", "mod 123;\n")

	res, err := Parse(path, 100)
	require.NoError(t, err)
	assert.True(t, res.Bag.HasErrors())
}
