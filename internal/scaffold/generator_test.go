package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/modsmith/cli/internal/errors"
	"github.com/modsmith/cli/internal/testutil"
)

func generate(t *testing.T, opts Options) (*Result, error) {
	t.Helper()
	cfg := testConfig()
	req, err := Resolve(opts, cfg)
	require.NoError(t, err)
	return NewGenerator(cfg).Generate(req)
}

func TestGenerate_Java(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mymod")

	result, err := generate(t, Options{TargetDir: target, ModName: "My Mod", NoGit: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "build.gradle"))
	assert.FileExists(t, filepath.Join(target, "gradle.properties"))
	assert.FileExists(t, filepath.Join(target, "settings.gradle"))
	assert.FileExists(t, filepath.Join(target, ".gitignore"))
	assert.FileExists(t, filepath.Join(target, "src/main/resources/fabric.mod.json"))
	assert.FileExists(t, filepath.Join(target, "src/main/resources/mymod.mixins.json"))
	assert.FileExists(t, filepath.Join(target, "src/main/java/net/fabricmc/example/ExampleMod.java"))
	assert.NoFileExists(t, filepath.Join(target, "src/main/kotlin/net/fabricmc/example/ExampleMod.kt"))

	assert.Len(t, result.Files, 7)
	assert.False(t, result.GitInitialized)
}

func TestGenerate_Kotlin(t *testing.T) {
	target := filepath.Join(t.TempDir(), "foo")

	_, err := generate(t, Options{
		TargetDir: target,
		ModID:     "foomod",
		ModName:   "Foo Mod",
		UseKotlin: true,
		MainClass: "com.example.foo.Foo",
		NoGit:     true,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "src/main/kotlin/com/example/foo/Foo.kt"))
	assert.NoFileExists(t, filepath.Join(target, "src/main/java/com/example/foo/Foo.java"))

	metadata := testutil.ReadFile(t, target, "src/main/resources/fabric.mod.json")
	assert.Contains(t, metadata, `"id": "foomod"`)
	assert.Contains(t, metadata, `"name": "Foo Mod"`)
	assert.Contains(t, metadata, `"com.example.foo.Foo"`)
	assert.Contains(t, metadata, `"adapter": "kotlin"`)

	properties := testutil.ReadFile(t, target, "gradle.properties")
	assert.Contains(t, properties, "maven_group=com.example")
	assert.Contains(t, properties, "archives_base_name=foo")
}

func TestGenerate_GitInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mymod")

	result, err := generate(t, Options{TargetDir: target, ModName: "My Mod"})
	require.NoError(t, err)

	assert.True(t, result.GitInitialized)
	assert.DirExists(t, filepath.Join(target, ".git"))
}

func TestGenerate_NoGit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mymod")

	result, err := generate(t, Options{TargetDir: target, ModName: "My Mod", NoGit: true})
	require.NoError(t, err)

	assert.False(t, result.GitInitialized)
	assert.NoDirExists(t, filepath.Join(target, ".git"))
}

func TestGenerate_NonEmptyTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mymod")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0o644))

	_, err := generate(t, Options{TargetDir: target, ModName: "My Mod", NoGit: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrIO)

	// Nothing may have been written.
	entries, readErr := os.ReadDir(target)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestGenerate_NonEmptyTargetForced(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mymod")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0o644))

	_, err := generate(t, Options{TargetDir: target, ModName: "My Mod", Force: true, NoGit: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "build.gradle"))
	assert.FileExists(t, filepath.Join(target, "existing.txt"))
}

func TestGenerate_TargetIsFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	_, err := generate(t, Options{TargetDir: target, ModName: "My Mod", NoGit: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrIO)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, target, detail.Location)
}
