package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/usedassets/internal/core/domain"
	"github.com/kamal-hamza/usedassets/internal/core/services"
	"github.com/kamal-hamza/usedassets/pkg/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy referenced assets into the static directory",
	Long: `Scan the page source for asset paths and copy each referenced file
from the source root to the same relative location under the destination root.

Only paths that follow =, a quote or a backtick, start with /, and end in
.png, .jpg, .jpeg, .svg or .mp4 are picked up.

Missing source files are reported as warnings and do not fail the run.
Any other filesystem error stops the run immediately.

Use --prune to also delete destination files that are no longer referenced,
and --dry-run to preview without writing.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	_, err := syncOnce(getContext(), cmd.OutOrStdout())
	return err
}

// syncOnce runs extract and copy, streaming a line per asset to out
func syncOnce(ctx context.Context, out io.Writer) (*services.SyncResponse, error) {
	assets, err := extractService.ExtractFile(ctx, appLayout.PagePath)
	if err != nil {
		return nil, err
	}

	req := services.SyncRequest{
		Assets:     assets,
		SourceRoot: appLayout.SourcePath,
		DestRoot:   appLayout.DestPath,
		DryRun:     flagDryRun,
		Prune:      appConfig.Prune,
		OnResult: func(r domain.CopyResult) {
			fmt.Fprintln(out, formatResult(r))
		},
	}

	resp, err := syncService.Execute(ctx, req)
	if err != nil {
		return resp, err
	}

	if resp.DryRun {
		fmt.Fprintln(out, ui.FormatInfo("Dry run complete, nothing was written."))
	} else {
		fmt.Fprintln(out, ui.FormatSuccess("Asset copying complete!"))
	}
	fmt.Fprintln(out, ui.FormatMuted(summary(resp)))

	return resp, nil
}

func formatResult(r domain.CopyResult) string {
	switch r.Status {
	case domain.StatusCopied:
		return ui.FormatSuccess(fmt.Sprintf("Copied %s -> %s", appLayout.Rel(r.Source), appLayout.Rel(r.Destination)))
	case domain.StatusWouldCopy:
		return ui.FormatInfo(fmt.Sprintf("Would copy %s -> %s", appLayout.Rel(r.Source), appLayout.Rel(r.Destination)))
	case domain.StatusMissingSource:
		return ui.FormatWarning(fmt.Sprintf("Warning: %s not found!", appLayout.Rel(r.Source)))
	case domain.StatusOutsideRoot:
		return ui.FormatWarning(fmt.Sprintf("Warning: %s points outside the asset root, skipped", r.Asset))
	case domain.StatusPruned:
		if flagDryRun {
			return ui.FormatPrune("Would remove " + appLayout.Rel(r.Destination))
		}
		return ui.FormatPrune("Removed " + appLayout.Rel(r.Destination))
	default:
		return string(r.Asset)
	}
}

func summary(resp *services.SyncResponse) string {
	s := fmt.Sprintf("%d copied, %d missing", resp.Copied, resp.Missing)
	if resp.Rejected > 0 {
		s += fmt.Sprintf(", %d skipped", resp.Rejected)
	}
	if resp.Pruned > 0 {
		s += fmt.Sprintf(", %d pruned", resp.Pruned)
	}
	return s
}
