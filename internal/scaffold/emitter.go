package scaffold

import (
	"errors"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	oerrors "github.com/modsmith/cli/internal/errors"
	"github.com/modsmith/cli/internal/output"
	"github.com/modsmith/cli/internal/templates"
)

// Emitter writes rendered files under a target root, creating intermediate
// directories as needed. The first failure aborts emission.
type Emitter struct {
	root string
}

// NewEmitter creates an emitter rooted at the target directory.
func NewEmitter(root string) *Emitter {
	return &Emitter{root: root}
}

// Emit writes each rendered file to its destination, in order. Errors carry
// the offending path.
func (e *Emitter) Emit(files []templates.File) error {
	if err := os.MkdirAll(e.root, 0o755); err != nil {
		return oerrors.NewIOError("creating target directory", e.root, err)
	}

	for _, f := range files {
		targetPath := filepath.Join(e.root, f.Path)

		parentDir := filepath.Dir(targetPath)
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return oerrors.NewIOError("creating directory", parentDir, err)
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return oerrors.NewIOError("writing file", targetPath, err)
		}

		output.Debug("created file", "path", f.Path)
	}

	return nil
}

// InitRepo initializes a git repository in the target root. An already
// existing repository is left alone.
func (e *Emitter) InitRepo() error {
	_, err := git.PlainInit(e.root, false)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			output.Debug("git repository already present", "path", e.root)
			return nil
		}
		return oerrors.NewIOError("initializing git repository", e.root, err)
	}

	output.Debug("initialized git repository", "path", e.root)
	return nil
}
