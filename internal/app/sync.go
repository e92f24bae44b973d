package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gatewaytools/perfsync/internal/perf"
	"github.com/gatewaytools/perfsync/internal/syncer"
	"github.com/gatewaytools/perfsync/internal/tui"
	"github.com/gatewaytools/perfsync/internal/workspace"
)

func newSyncCmd() *cobra.Command {
	var (
		variantFlag string
		doStage     bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch, convert and load the workspace books",
		Long: `Run a reconciliation pass over the workspace.

Every book that is not yet loaded is fetched from the configured DCS
organization, decoded, converted from USFM to PERF, and loaded into the
document engine. Books that already loaded are left alone; a failure on
one book does not stop the others.

With --stage, converted documents are also written to the stage
directory as JSON, one file per book, grouped by source repository.`,
		Example: `  perfsync sync --variant literal
  perfsync sync --variant simplified --stage`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dcsCli == nil {
				return fmt.Errorf("no DCS token found — set %s or PERFSYNC_DCS_TOKEN",
					cfg.DCS.TokenEnv)
			}
			if !cfg.DCS.Complete() {
				return fmt.Errorf("owner and language are not configured — run 'perfsync init'")
			}

			variantName := resolveVariantName(variantFlag, cfg.Defaults.Variant)
			if variantFlag == "" && tui.ShouldUseTUI(cmd) {
				picked, err := tui.RunVariantPicker()
				if err != nil {
					return err
				}
				variantName = picked
			}
			variant, err := syncer.ParseVariant(variantName)
			if err != nil {
				return err
			}

			entries, err := loadWorkspace()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				warn("workspace is empty — add books with 'perfsync add' first")
				return nil
			}

			repo := cfg.DCS.LanguageID + syncer.RepoSuffix(cfg.DCS.Owner, variant)
			header("Syncing %d book(s) from %s/%s …", len(entries), cfg.DCS.Owner, repo)

			s := syncer.New(dcsCli, eng, perf.ToPERF)
			s.SetSelection(syncer.Selection{
				Owner:      cfg.DCS.Owner,
				Server:     cfg.DCS.Server,
				LanguageID: cfg.DCS.LanguageID,
			})
			s.SetAuthenticated(cfg.DCS.Authenticated())
			s.SetBooks(entries)
			s.Trigger(variant)

			rep := s.Sync()
			if rep == nil {
				return fmt.Errorf("sync did not run — check configuration")
			}

			for _, o := range rep.Loaded() {
				ok("%s ← %s", strings.ToUpper(o.BookID), o.Repo)
			}
			for _, o := range rep.Failed() {
				warn("%s: %v", o.BookID, o.Err)
			}

			final := s.Books()
			if doStage {
				if err := stageLoaded(final); err != nil {
					return err
				}
			}

			loaded := 0
			for _, e := range final {
				if e.Status == workspace.StatusLoaded {
					loaded++
				}
			}
			fmt.Println()
			fmt.Printf("Loaded %s of %d book(s). Engine holds: %s\n",
				color.GreenString("%d", loaded),
				len(final),
				color.CyanString(strings.Join(eng.LocalBookCodes(), " ")))
			return nil
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", "Variant to sync: literal or simplified")
	cmd.Flags().BoolVar(&doStage, "stage", false, "Export converted documents to the stage directory")

	return cmd
}

func stageLoaded(entries []workspace.Entry) error {
	staged := 0
	for _, e := range entries {
		if e.Status != workspace.StatusLoaded || e.Perf == nil {
			continue
		}
		repo := e.Repo
		if repo == "" {
			// Upload entries have no source repository.
			repo = "uploads"
		}
		path, err := stageMgr.Store(repo, strings.ToUpper(e.BookID), e.Perf)
		if err != nil {
			return fmt.Errorf("staging %s: %w", e.BookID, err)
		}
		ok("Staged %s", path)
		staged++
	}
	if staged == 0 {
		warn("nothing to stage")
	}
	return nil
}
