package scaffold

import (
	"fmt"
	"os"

	"github.com/modsmith/cli/internal/config"
	oerrors "github.com/modsmith/cli/internal/errors"
	"github.com/modsmith/cli/internal/output"
	"github.com/modsmith/cli/internal/templates"
)

// Generator runs the single resolve → render → emit pass that materializes
// a project from a resolved request.
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a generator using the given defaults.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Result describes a completed generation.
type Result struct {
	// TargetDir is the directory the project was created in.
	TargetDir string

	// Files are the rendered files, in emission order.
	Files []templates.File

	// GitInitialized reports whether a git repository was created.
	GitInitialized bool
}

// Generate renders every template for the request's language variant and
// writes the project tree. Nothing is written if the target check fails.
func (g *Generator) Generate(req Request) (*Result, error) {
	if err := g.checkTargetDir(req); err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"target", req.TargetDir,
		"id", req.ModID,
		"name", req.ModName,
		"language", string(req.Language),
		"main", req.MainClass)

	renderer := templates.NewRenderer(req.TemplateData(g.cfg))
	files, err := renderer.RenderAll(req.Language)
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}

	emitter := NewEmitter(req.TargetDir)
	if err := emitter.Emit(files); err != nil {
		return nil, err
	}

	result := &Result{
		TargetDir: req.TargetDir,
		Files:     files,
	}

	if req.InitGit {
		if err := emitter.InitRepo(); err != nil {
			return nil, err
		}
		result.GitInitialized = true
	}

	return result, nil
}

// checkTargetDir refuses a target that exists and is non-empty, or that is
// not a directory, unless the request forces overwriting.
func (g *Generator) checkTargetDir(req Request) error {
	info, err := os.Stat(req.TargetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return oerrors.NewIOError("checking target directory", req.TargetDir, err)
	}

	if !info.IsDir() {
		return oerrors.NewConflictError(
			fmt.Sprintf("%s exists and is not a directory", req.TargetDir),
			req.TargetDir,
			"choose a different target path")
	}

	entries, err := os.ReadDir(req.TargetDir)
	if err != nil {
		return oerrors.NewIOError("reading target directory", req.TargetDir, err)
	}

	if len(entries) > 0 && !req.Force {
		return oerrors.NewConflictError(
			fmt.Sprintf("directory %s is not empty", req.TargetDir),
			req.TargetDir,
			"use --force to overwrite existing files")
	}

	return nil
}
