// Package scaffold turns a generation request into a project tree on disk.
package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/modsmith/cli/internal/config"
	oerrors "github.com/modsmith/cli/internal/errors"
	"github.com/modsmith/cli/internal/templates"
)

// Options are the raw values collected from the command line, before
// defaulting and validation.
type Options struct {
	// TargetDir is the directory the project is created in.
	TargetDir string

	// ModID is the mod identifier; derived from TargetDir when empty.
	ModID string

	// ModName is the display name. Required.
	ModName string

	// UseKotlin selects the Kotlin variant.
	UseKotlin bool

	// MainClass is the fully qualified entry-point class; falls back to
	// the configured default when empty.
	MainClass string

	// Force allows writing into a non-empty target directory.
	Force bool

	// NoGit skips git repository initialization.
	NoGit bool
}

// Request is the fully resolved generation request. It is immutable once
// built: rendering and emission only read from it.
type Request struct {
	TargetDir string
	ModID     string
	ModName   string
	Language  templates.Language
	MainClass string
	Force     bool
	InitGit   bool
}

// Resolve produces a complete Request from raw options, filling defaults
// and validating identifiers. It has no side effects.
func Resolve(opts Options, cfg *config.Config) (Request, error) {
	if strings.TrimSpace(opts.TargetDir) == "" {
		return Request{}, oerrors.NewMissingFieldError("path",
			"pass the target directory as the first argument, like: modsmith ./mymod --name \"My Mod\"")
	}

	name := strings.TrimSpace(opts.ModName)
	if name == "" {
		return Request{}, oerrors.NewMissingFieldError("name",
			"pass the mod display name with --name, like: --name \"My Mod\"")
	}

	modID := strings.TrimSpace(opts.ModID)
	if modID == "" {
		modID = DeriveModID(opts.TargetDir)
	}
	if err := templates.ValidateModID(modID); err != nil {
		return Request{}, oerrors.NewValidationError(err.Error(), "id",
			"pass an explicit identifier with --id, or rename the target directory")
	}

	mainClass := strings.TrimSpace(opts.MainClass)
	if mainClass == "" {
		mainClass = cfg.Defaults.MainClass
	}
	if _, _, err := templates.SplitMainClass(mainClass); err != nil {
		return Request{}, oerrors.NewValidationError(err.Error(), "main",
			"pass a fully qualified class with --main, like: --main com.example.mymod.MyMod")
	}

	return Request{
		TargetDir: opts.TargetDir,
		ModID:     modID,
		ModName:   name,
		Language:  templates.ParseLanguage(opts.UseKotlin),
		MainClass: mainClass,
		Force:     opts.Force,
		InitGit:   !opts.NoGit && cfg.GitInit(),
	}, nil
}

// DeriveModID returns the default mod identifier for a target path: its
// final path segment, verbatim.
func DeriveModID(targetDir string) string {
	return filepath.Base(filepath.Clean(targetDir))
}

// TemplateData expands the request into the substitution values every
// template placeholder binds to.
func (r Request) TemplateData(cfg *config.Config) templates.Data {
	// Already validated during Resolve.
	pkg, class, _ := templates.SplitMainClass(r.MainClass)
	group, base := templates.SplitPackage(pkg)

	return templates.Data{
		ModID:            r.ModID,
		ModName:          r.ModName,
		MainClass:        r.MainClass,
		Package:          pkg,
		ClassName:        class,
		PackagePath:      templates.PackagePath(pkg),
		MavenGroup:       group,
		ArchivesBaseName: base,
		Kotlin:           r.Language == templates.Kotlin,

		MinecraftVersion:    cfg.Versions.Minecraft,
		YarnVersion:         cfg.Versions.Yarn,
		LoaderVersion:       cfg.Versions.Loader,
		LoomVersion:         cfg.Versions.Loom,
		FabricVersion:       cfg.Versions.FabricAPI,
		FabricKotlinVersion: cfg.Versions.FabricKotlin,
		KotlinVersion:       cfg.Versions.Kotlin,
	}
}
