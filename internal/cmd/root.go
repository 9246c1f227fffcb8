package cmd

import (
	"github.com/spf13/cobra"

	"github.com/modsmith/cli/internal/output"
	"github.com/modsmith/cli/internal/version"
)

var (
	// Flags for the root command.
	idFlag      string
	nameFlag    string
	kotlinFlag  bool
	mainFlag    string
	forceFlag   bool
	noGitFlag   bool
	verboseFlag bool
)

// NewRootCmd creates the root command for the modsmith CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modsmith <path>",
		Short: "Scaffold a Fabric mod project",
		Long: `modsmith creates a minimal buildable Fabric mod project: Gradle build
configuration, mod metadata, a mixins descriptor, and a Java or Kotlin
entry-point stub.

Examples:
  # Create a Java mod; the id is derived from the directory name
  modsmith ./mymod --name "My Mod"

  # Create a Kotlin mod with an explicit id and main class
  modsmith ./foo --name "Foo Mod" --id foomod --kotlin --main com.example.Foo`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.GetInfo().Short(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verboseFlag)
		},
		RunE: runNew,
	}

	rootCmd.Flags().StringVarP(&idFlag, "id", "i", "",
		"mod identifier (default: derived from the target directory name)")
	rootCmd.Flags().StringVarP(&nameFlag, "name", "n", "",
		"mod display name (required)")
	rootCmd.Flags().BoolVarP(&kotlinFlag, "kotlin", "k", false,
		"generate a Kotlin entry point instead of Java")
	rootCmd.Flags().StringVarP(&mainFlag, "main", "m", "",
		"fully qualified main class (default: net.fabricmc.example.ExampleMod)")
	rootCmd.Flags().BoolVarP(&forceFlag, "force", "f", false,
		"allow writing into a non-empty target directory")
	rootCmd.Flags().BoolVar(&noGitFlag, "no-git", false,
		"skip git repository initialization")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"increase output verbosity")

	// Registered before cobra's automatic flag so --version gets the -V
	// shorthand instead of colliding with --verbose.
	rootCmd.Flags().BoolP("version", "V", false, "version for modsmith")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
