// Package config loads generation defaults for the modsmith CLI.
package config

// Config holds user-tunable generation defaults. All values have builtin
// fallbacks; the config file and environment are optional.
type Config struct {
	// Defaults controls field fallbacks applied during request resolution.
	Defaults Defaults `mapstructure:"defaults"`

	// Versions pins the toolchain versions substituted into gradle.properties.
	Versions Versions `mapstructure:"versions"`

	// Git controls repository initialization of generated projects.
	Git Git `mapstructure:"git"`
}

// Defaults holds field fallbacks applied when flags are absent.
type Defaults struct {
	// MainClass is the fully qualified main class used when --main is omitted.
	MainClass string `mapstructure:"mainClass"`
}

// Versions pins the Fabric toolchain versions written into generated projects.
type Versions struct {
	Minecraft    string `mapstructure:"minecraft"`
	Yarn         string `mapstructure:"yarn"`
	Loader       string `mapstructure:"loader"`
	Loom         string `mapstructure:"loom"`
	FabricAPI    string `mapstructure:"fabricApi"`
	FabricKotlin string `mapstructure:"fabricKotlin"`
	Kotlin       string `mapstructure:"kotlin"`
}

// Git controls repository initialization of generated projects.
type Git struct {
	// Init initializes a git repository in the generated project. The
	// --no-git flag overrides it per invocation.
	Init *bool `mapstructure:"init"`
}

// Builtin fallbacks, matching the FabricMC example mod the templates derive from.
const (
	DefaultMainClass = "net.fabricmc.example.ExampleMod"

	defaultMinecraft    = "1.21.4"
	defaultYarn         = "1.21.4+build.8"
	defaultLoader       = "0.16.10"
	defaultLoom         = "1.9-SNAPSHOT"
	defaultFabricAPI    = "0.119.2+1.21.4"
	defaultFabricKotlin = "1.13.0+kotlin.2.1.0"
	defaultKotlin       = "2.1.0"
)

// WithDefaults returns a copy of the config with builtin fallbacks applied
// to every unset field.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Defaults.MainClass == "" {
		out.Defaults.MainClass = DefaultMainClass
	}
	if out.Versions.Minecraft == "" {
		out.Versions.Minecraft = defaultMinecraft
	}
	if out.Versions.Yarn == "" {
		out.Versions.Yarn = defaultYarn
	}
	if out.Versions.Loader == "" {
		out.Versions.Loader = defaultLoader
	}
	if out.Versions.Loom == "" {
		out.Versions.Loom = defaultLoom
	}
	if out.Versions.FabricAPI == "" {
		out.Versions.FabricAPI = defaultFabricAPI
	}
	if out.Versions.FabricKotlin == "" {
		out.Versions.FabricKotlin = defaultFabricKotlin
	}
	if out.Versions.Kotlin == "" {
		out.Versions.Kotlin = defaultKotlin
	}
	if out.Git.Init == nil {
		t := true
		out.Git.Init = &t
	}

	return &out
}

// GitInit reports whether generated projects should get a git repository.
func (c *Config) GitInit() bool {
	return c.Git.Init == nil || *c.Git.Init
}
