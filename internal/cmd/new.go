package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modsmith/cli/internal/config"
	"github.com/modsmith/cli/internal/output"
	"github.com/modsmith/cli/internal/scaffold"
)

// runNew resolves the command line into a generation request, runs the
// generator, and prints the created-file tree.
func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadWithDefaults("")
	if err != nil {
		return err
	}

	req, err := scaffold.Resolve(scaffold.Options{
		TargetDir: args[0],
		ModID:     idFlag,
		ModName:   nameFlag,
		UseKotlin: kotlinFlag,
		MainClass: mainFlag,
		Force:     forceFlag,
		NoGit:     noGitFlag,
	}, cfg)
	if err != nil {
		return err
	}

	result, err := scaffold.NewGenerator(cfg).Generate(req)
	if err != nil {
		return err
	}

	printResult(cmd, req, result)
	return nil
}

// printResult writes the success report: a checkmark line and the tree of
// created files with per-file descriptions.
func printResult(cmd *cobra.Command, req scaffold.Request, result *scaffold.Result) {
	styles := output.GetStyles()

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Created mod %s in %s\n",
		styles.Noun.Render(req.ModID),
		styles.Noun.Render(result.TargetDir))))

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f.Path] = f.Description
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderFileTree(filepath.Base(result.TargetDir), files))

	if result.GitInitialized {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("\nInitialized empty git repository."))
	}
}
