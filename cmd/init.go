package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/usedassets/pkg/config"
	"github.com/kamal-hamza/usedassets/pkg/project"
	"github.com/kamal-hamza/usedassets/pkg/ui"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName + " in the project root",
	Long: `Create ` + config.FileName + ` with the default paths:

  page:        src/routes/+page.svelte
  source_root: static_all
  dest_root:   static

The file is optional; without it the same defaults apply.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root := flagRoot
	if root == "" {
		root = "."
	}
	path := flagConfigPath
	if path == "" {
		path = project.ConfigPathFor(root)
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintln(out, ui.FormatWarning("Config already exists"))
		fmt.Fprintln(out, ui.FormatMuted("Location: "+path))
		fmt.Fprintln(out, ui.FormatMuted("Use --force to overwrite"))
		return nil
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.FormatSuccess("Config created"))
	fmt.Fprintln(out, ui.RenderKeyValue("Location", path))

	// Hint when the default bulk directory isn't there yet
	if _, err := os.Stat(filepath.Join(root, config.DefaultSourceRoot)); os.IsNotExist(err) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.FormatInfo("Move your full asset set into "+config.DefaultSourceRoot+"/ and run 'usedassets'"))
	}

	return nil
}
