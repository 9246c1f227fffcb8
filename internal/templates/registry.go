package templates

// Entry pairs an embedded template body with its destination path. The
// destination is itself a template so source files land under their
// package directories and the mixins descriptor carries the mod id.
type Entry struct {
	// Source is the path within the embedded filesystem.
	Source string

	// Target is the destination path template, relative to the project root.
	Target string

	// Description is a short label for the generation report.
	Description string
}

// commonEntries are emitted for every language variant: the build
// configuration and the mod metadata descriptors.
var commonEntries = []Entry{
	{
		Source:      "common/build.gradle.tmpl",
		Target:      "build.gradle",
		Description: "Gradle build script",
	},
	{
		Source:      "common/gradle.properties.tmpl",
		Target:      "gradle.properties",
		Description: "Project and toolchain versions",
	},
	{
		Source:      "common/settings.gradle.tmpl",
		Target:      "settings.gradle",
		Description: "Plugin repositories",
	},
	{
		Source:      "common/gitignore.tmpl",
		Target:      ".gitignore",
		Description: "",
	},
	{
		Source:      "common/fabric.mod.json.tmpl",
		Target:      "src/main/resources/fabric.mod.json",
		Description: "Mod metadata",
	},
	{
		Source:      "common/mixins.json.tmpl",
		Target:      "src/main/resources/{{ .ModID }}.mixins.json",
		Description: "Mixins configuration",
	},
}

// languageEntries hold the single per-variant entry-point source template.
var languageEntries = map[Language]Entry{
	Java: {
		Source:      "java/entrypoint.java.tmpl",
		Target:      "src/main/java/{{ .PackagePath }}/{{ .ClassName }}.java",
		Description: "Mod entry point",
	},
	Kotlin: {
		Source:      "kotlin/entrypoint.kt.tmpl",
		Target:      "src/main/kotlin/{{ .PackagePath }}/{{ .ClassName }}.kt",
		Description: "Mod entry point",
	},
}

// EntriesFor returns the ordered template entries for a language variant:
// the shared build and metadata templates followed by the variant's
// entry-point source.
func EntriesFor(lang Language) []Entry {
	entries := make([]Entry, 0, len(commonEntries)+1)
	entries = append(entries, commonEntries...)
	entries = append(entries, languageEntries[lang])
	return entries
}
