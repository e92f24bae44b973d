package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gatewaytools/perfsync/internal/books"
	"github.com/gatewaytools/perfsync/internal/tui"
	"github.com/gatewaytools/perfsync/internal/workspace"
)

func newAddCmd() *cobra.Command {
	var (
		fromURL  string
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "add [code...]",
		Short: "Add books to the workspace",
		Long: `Add book requests to the workspace.

Books can be added three ways:
  • by canonical 3-letter code (GEN, PSA, JHN ...)
  • by USFM file URL with --url; the book code is guessed from the URL
  • from a local USFM file with --file; the text is used as-is, no fetch

With no arguments on a terminal, an interactive picker opens.`,
		Example: `  perfsync add GEN EXO
  perfsync add --url https://git.door43.org/unfoldingWord/en_ult/raw/branch/master/01-GEN.usfm
  perfsync add --file ~/drafts/44-JHN.usfm`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadWorkspace()
			if err != nil {
				return err
			}

			added, err := buildEntries(cmd, args, fromURL, fromFile, entries)
			if err != nil {
				return err
			}

			for _, e := range added {
				if !books.IsValid(e.BookID) {
					warn("book code %q is not canonical — the remote fetch will fail", e.BookID)
				}
				entries = workspace.Append(entries, e)
				ok("Added %s (%s)", e.BookID, e.ID)
			}

			return saveWorkspace(entries)
		},
	}

	cmd.Flags().StringVar(&fromURL, "url", "", "Add a book by USFM file URL")
	cmd.Flags().StringVar(&fromFile, "file", "", "Add a book from a local USFM file")

	return cmd
}

func buildEntries(cmd *cobra.Command, args []string, fromURL, fromFile string, existing []workspace.Entry) ([]workspace.Entry, error) {
	switch {
	case fromURL != "":
		e, err := workspace.NewURLEntry(fromURL)
		if err != nil {
			return nil, err
		}
		return []workspace.Entry{e}, nil

	case fromFile != "":
		text, err := os.ReadFile(fromFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fromFile, err)
		}
		abs, err := filepath.Abs(fromFile)
		if err != nil {
			abs = fromFile
		}
		e, err := workspace.NewUploadEntry(filepath.Base(fromFile), abs, string(text))
		if err != nil {
			return nil, err
		}
		return []workspace.Entry{e}, nil

	case len(args) > 0:
		var out []workspace.Entry
		for _, code := range args {
			e, err := workspace.NewCodeEntry(code)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil

	default:
		if !tui.ShouldUseTUI(cmd) {
			return nil, fmt.Errorf("specify book codes, --url, or --file")
		}
		var have []string
		for _, e := range existing {
			have = append(have, e.BookID)
		}
		codes, err := tui.RunBookPicker(have)
		if err != nil {
			return nil, err
		}
		var out []workspace.Entry
		for _, code := range codes {
			e, err := workspace.NewCodeEntry(code)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	}
}
