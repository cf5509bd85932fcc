package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/usedassets/internal/core/domain"
	"github.com/kamal-hamza/usedassets/pkg/ui"
)

var (
	listInteractive bool
	listMissingOnly bool

	// Swapped in tests
	findAsset      = fuzzyfinder.Find
	writeClipboard = clipboard.WriteAll
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show assets referenced by the page and where they exist",
	Long: `List every asset path found in the page source along with its state:

  synced        present in both source and destination
  pending       present in source, not yet copied
  missing       not present in source
  orphaned      missing from source but still in the destination
  outside-root  path climbs out of the asset root and is ignored

Use --interactive to pick an asset with a fuzzy finder; the chosen path
is copied to the clipboard.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "Pick an asset with a fuzzy finder")
	listCmd.Flags().BoolVarP(&listMissingOnly, "missing", "m", false, "Only show assets absent from the source root")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()

	assets, err := extractService.ExtractFile(ctx, appLayout.PagePath)
	if err != nil {
		return err
	}

	statuses, err := syncService.Inspect(ctx, assets, appLayout.SourcePath, appLayout.DestPath)
	if err != nil {
		return err
	}

	if listMissingOnly {
		filtered := statuses[:0]
		for _, st := range statuses {
			if !st.InSource {
				filtered = append(filtered, st)
			}
		}
		statuses = filtered
	}

	if len(statuses) == 0 {
		fmt.Fprintln(out, ui.FormatWarning("No matching assets found."))
		return nil
	}

	if listInteractive {
		return pickAsset(out, statuses)
	}

	table := ui.NewTable("ASSET", "STATE", "SOURCE")
	for _, st := range statuses {
		src := "-"
		if st.Source != "" {
			src = appLayout.Rel(st.Source)
		}
		table.AddRow(string(st.Asset), ui.FormatState(st.State()), src)
	}

	fmt.Fprint(out, table.Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatMuted(fmt.Sprintf("%d assets referenced by %s", len(statuses), appLayout.Rel(appLayout.PagePath))))
	return nil
}

// pickAsset launches the fuzzy finder and copies the chosen path
func pickAsset(out io.Writer, statuses []domain.AssetStatus) error {
	idx, err := findAsset(
		statuses,
		func(i int) string {
			return fmt.Sprintf("%s  [%s]", statuses[i].Asset, statuses[i].State())
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			st := statuses[i]

			var s strings.Builder
			s.WriteString(fmt.Sprintf("Asset: %s\n", st.Asset))
			s.WriteString(fmt.Sprintf("State: %s\n\n", st.State()))
			if st.Source != "" {
				s.WriteString(fmt.Sprintf("Source:      %s\n", appLayout.Rel(st.Source)))
				s.WriteString(fmt.Sprintf("Destination: %s\n", appLayout.Rel(st.Destination)))
			}
			return s.String()
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Fprintln(out, ui.FormatInfo("Selection cancelled."))
			return nil
		}
		return err
	}

	selected := statuses[idx]
	fmt.Fprintln(out, ui.FormatSuccess("Selected: "+string(selected.Asset)))

	if err := writeClipboard(string(selected.Asset)); err != nil {
		fmt.Fprintln(out, ui.FormatMuted("(Clipboard access failed)"))
	} else {
		fmt.Fprintln(out, ui.FormatMuted("(Path copied to clipboard)"))
	}

	return nil
}
