// Package templates provides the embedded project templates for modsmith.
package templates

import "fmt"

// Language selects which entry-point template a generated project gets.
type Language string

const (
	// Java is the default language variant.
	Java Language = "java"

	// Kotlin selects the Kotlin entry-point template.
	Kotlin Language = "kotlin"
)

// Valid reports whether the language is one of the two supported variants.
func (l Language) Valid() bool {
	return l == Java || l == Kotlin
}

// Extension returns the source file extension for the language.
func (l Language) Extension() string {
	if l == Kotlin {
		return "kt"
	}
	return "java"
}

// SourceRoot returns the Gradle source root for the language
// (src/main/java or src/main/kotlin).
func (l Language) SourceRoot() string {
	return "src/main/" + string(l)
}

// Data holds the values substituted into template bodies and destination
// paths. Every placeholder in every template maps to a field here.
type Data struct {
	// ModID is the mod identifier (lowercase, Fabric convention).
	ModID string

	// ModName is the display name.
	ModName string

	// MainClass is the fully qualified entry-point class.
	MainClass string

	// Package is MainClass without its final segment.
	Package string

	// ClassName is the final segment of MainClass.
	ClassName string

	// PackagePath is Package with slashes, for source file placement.
	PackagePath string

	// MavenGroup is Package without its final segment, written to
	// gradle.properties as the maven group.
	MavenGroup string

	// ArchivesBaseName is the final segment of Package, written to
	// gradle.properties as the archives base name.
	ArchivesBaseName string

	// Kotlin is true for the Kotlin variant. The shared build and metadata
	// templates branch on it to pull in the Kotlin toolchain.
	Kotlin bool

	// Toolchain version pins.
	MinecraftVersion    string
	YarnVersion         string
	LoaderVersion       string
	LoomVersion         string
	FabricVersion       string
	FabricKotlinVersion string
	KotlinVersion       string
}

// File is a rendered template: a path relative to the project root and its
// final content.
type File struct {
	// Path is the destination path relative to the target directory.
	Path string

	// Content is the rendered file content.
	Content []byte

	// Description is a short label for the generation report.
	Description string
}

// ParseLanguage maps the kotlin flag to a language variant.
func ParseLanguage(useKotlin bool) Language {
	if useKotlin {
		return Kotlin
	}
	return Java
}

// LanguageFromString parses a language name.
func LanguageFromString(name string) (Language, error) {
	l := Language(name)
	if !l.Valid() {
		return "", fmt.Errorf("unknown language %q; valid languages: java, kotlin", name)
	}
	return l, nil
}
