package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gatewaytools/perfsync/internal/books"
)

func newBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the books in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadWorkspace()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Workspace is empty. Add books with 'perfsync add'.")
				return nil
			}

			header("Workspace books (%d)", len(entries))
			for _, e := range entries {
				name := ""
				if b := books.ByCode(e.BookID); b != nil {
					name = b.Name
				}
				fmt.Printf("  %s %-4s %-18s %-7s %s\n",
					statusLabel(e.Status),
					e.BookID,
					name,
					e.Source,
					color.CyanString(entryDetail(e)))
			}
			return nil
		},
	}
}
