package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/definitions"
	"github.com/Manu343726/spvgen/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedPreamble = codegen.Preamble{
	Project:   "Inochi2D Project",
	Year:      2024,
	Generator: "spvgen",
	Package:   "spirv",
	Imports:   []string{"spirv.spv"},
}

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()

	model, err := grammar.Load(filepath.Join("..", "grammar", "testdata", "mini.json"))
	require.NoError(t, err)

	return NewGenerator(model, definitions.Default, append([]Option{WithPreamble(fixedPreamble)}, opts...)...)
}

func TestDefaultPreamble(t *testing.T) {
	preamble := DefaultPreamble()

	assert.Equal(t, time.Now().Year(), preamble.Year)
	assert.Equal(t, "spirv", preamble.Package)
	assert.Equal(t, []string{"spirv.spv"}, preamble.Imports)
}

func TestNewGenerator_Jobs(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), newTestGenerator(t).jobs)
	assert.Equal(t, runtime.NumCPU(), newTestGenerator(t, WithJobs(-3)).jobs)
	assert.Equal(t, 2, newTestGenerator(t, WithJobs(2)).jobs)
}

func TestRunDefinition(t *testing.T) {
	g := newTestGenerator(t)

	var out bytes.Buffer
	require.NoError(t, g.RunDefinition("reflection", &out))

	text := out.String()
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "/*\n    Copyright © 2024, Inochi2D Project\n")
	assert.Contains(t, text, "module spirv.reflection;\nimport spirv.spv;\nimport nulib.collections;\nimport numem;\n\n")
	assert.Contains(t, text, "OpClass getClass(Op code) @nogc {\n")
	assert.Contains(t, text, "        case Op.OpDecorate:\n        case Op.OpDecorateString:\n            return OpClass.annotation;\n")
	assert.NotContains(t, text, "OpDecorateStringGOOGLE")
}

func TestRunDefinition_UnknownDefinition(t *testing.T) {
	var out bytes.Buffer
	err := newTestGenerator(t).RunDefinition("nope", &out)

	assert.ErrorIs(t, err, definitions.ErrUnknownDefinition)
	assert.Empty(t, out.String())
}

func TestResolve(t *testing.T) {
	g := newTestGenerator(t)

	names := func(ids ...string) []string {
		selected, err := g.Resolve(ids)
		require.NoError(t, err)

		result := make([]string, 0, len(selected))
		for _, definition := range selected {
			result = append(result, definition.Name())
		}
		return result
	}

	assert.Equal(t, []string{"mnemonics", "reflection", "typeinfo"}, names())
	assert.Equal(t, []string{"mnemonics", "reflection", "typeinfo"}, names(definitions.All))
	assert.Equal(t, []string{"typeinfo", "mnemonics", "reflection"}, names("typeinfo", "all", "typeinfo"))
	assert.Equal(t, []string{"reflection"}, names("reflection", "reflection"))

	_, err := g.Resolve([]string{"reflection", "bogus"})
	assert.ErrorIs(t, err, definitions.ErrUnknownDefinition)
}

func TestGenerate_WritesEveryDefinition(t *testing.T) {
	g := newTestGenerator(t, WithJobs(2))
	dir := filepath.Join(t.TempDir(), "nested", "out")

	paths, err := g.Generate(context.Background(), []string{definitions.All}, dir)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "mnemonics.d"),
		filepath.Join(dir, "reflection.d"),
		filepath.Join(dir, "typeinfo.d"),
	}, paths)

	for _, id := range []string{"mnemonics", "reflection", "typeinfo"} {
		var expected bytes.Buffer
		require.NoError(t, g.RunDefinition(id, &expected))

		written, err := os.ReadFile(g.OutputPath(dir, id))
		require.NoError(t, err)
		assert.Equal(t, expected.String(), string(written), id)
	}
}

func TestGenerate_UnknownDefinitionWritesNothing(t *testing.T) {
	dir := t.TempDir()

	paths, err := newTestGenerator(t).Generate(context.Background(), []string{"reflection", "bogus"}, dir)
	assert.ErrorIs(t, err, definitions.ErrUnknownDefinition)
	assert.Nil(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := newTestGenerator(t).Generate(ctx, nil, dir)
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := newTestGenerator(t).Generate(context.Background(), []string{"typeinfo"}, file)
	assert.Error(t, err)
}
