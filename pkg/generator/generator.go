// Package generator runs emitter definitions against a grammar model and writes the
// generated modules out.
package generator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/definitions"
	"github.com/Manu343726/spvgen/pkg/grammar"
	"golang.org/x/sync/errgroup"
)

// Returns the header used when none is configured
func DefaultPreamble() codegen.Preamble {
	return codegen.Preamble{
		Project:   "Inochi2D Project",
		Year:      time.Now().Year(),
		License:   "Distributed under the 2-Clause BSD License, see LICENSE file.",
		Authors:   []string{"Luna Nielsen"},
		Generator: "spvgen",
		Package:   "spirv",
		Imports:   []string{"spirv.spv"},
	}
}

type Generator struct {
	grammar  *grammar.Grammar
	registry *definitions.Registry
	builder  *codegen.Builder
	preamble codegen.Preamble
	jobs     int
	logger   *slog.Logger
}

type Option func(*Generator)

// Sets the module header
func WithPreamble(preamble codegen.Preamble) Option {
	return func(g *Generator) {
		g.preamble = preamble
	}
}

// Sets how many definitions [Generator.Generate] runs at once. Values below 1 mean one per CPU
func WithJobs(jobs int) Option {
	return func(g *Generator) {
		g.jobs = jobs
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Returns a generator running the definitions of registry against model.
// Modules are rendered in the dialect the grammar was loaded for
func NewGenerator(model *grammar.Grammar, registry *definitions.Registry, opts ...Option) *Generator {
	g := &Generator{
		grammar:  model,
		registry: registry,
		builder:  codegen.NewBuilder(model.Dialect()),
		preamble: DefaultPreamble(),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.jobs < 1 {
		g.jobs = runtime.NumCPU()
	}

	return g
}

// Expands a list of definition names into definitions. An empty list or the name
// [definitions.All] selects every registered definition. Repeated names are run once
func (g *Generator) Resolve(ids []string) ([]definitions.Definition, error) {
	if len(ids) == 0 {
		return g.registry.All(), nil
	}

	var result []definitions.Definition
	seen := make(map[string]struct{}, len(ids))

	add := func(definition definitions.Definition) {
		if _, ok := seen[definition.Name()]; !ok {
			seen[definition.Name()] = struct{}{}
			result = append(result, definition)
		}
	}

	for _, id := range ids {
		if id == definitions.All {
			for _, definition := range g.registry.All() {
				add(definition)
			}
			continue
		}

		definition, err := g.registry.Lookup(id)
		if err != nil {
			return nil, err
		}

		add(definition)
	}

	return result, nil
}

// Returns the module populated by the named definition
func (g *Generator) Module(id string) (*codegen.Module, error) {
	definition, err := g.registry.Lookup(id)
	if err != nil {
		return nil, err
	}

	return g.populate(definition), nil
}

func (g *Generator) populate(definition definitions.Definition) *codegen.Module {
	start := time.Now()
	module := definition.Populate(g.grammar, g.builder, g.preamble)

	g.logger.Debug("populated module",
		slog.String("definition", definition.Name()),
		slog.Int("nodes", len(module.Nodes())),
		slog.Duration("elapsed", time.Since(start)))

	return module
}

// Runs the named definition and writes the generated module to w
func (g *Generator) RunDefinition(id string, w io.Writer) error {
	module, err := g.Module(id)
	if err != nil {
		return err
	}

	_, err = module.WriteTo(w)
	return err
}

// Returns the path the named definition is written to by [Generator.Generate]
func (g *Generator) OutputPath(outputDir string, id string) string {
	return filepath.Join(outputDir, id+g.grammar.Dialect().FileExtension)
}

func (g *Generator) writeFile(path string, definition definitions.Definition) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = g.populate(definition).WriteTo(file)
	return err
}

// Runs the given definitions and writes each module to its own file in outputDir,
// which is created if missing. Returns the written paths in definition order.
// The first failure cancels the definitions that did not start yet
func (g *Generator) Generate(ctx context.Context, ids []string, outputDir string) ([]string, error) {
	selected, err := g.Resolve(ids)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, len(selected))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(g.jobs)

	for i, definition := range selected {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := g.OutputPath(outputDir, definition.Name())
			if err := g.writeFile(path, definition); err != nil {
				g.logger.Error("generation failed",
					slog.String("definition", definition.Name()),
					slog.String("path", path),
					slog.Any("error", err))
				return err
			}

			g.logger.Info("generated module",
				slog.String("definition", definition.Name()),
				slog.String("path", path))
			paths[i] = path
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}
