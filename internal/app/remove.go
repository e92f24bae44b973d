package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gatewaytools/perfsync/internal/workspace"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id|code>...",
		Short: "Remove books from the workspace",
		Long: `Remove entries from the workspace.

Arguments are matched first as exact entry IDs, then as book codes. A
book code removes every entry requesting that book.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadWorkspace()
			if err != nil {
				return err
			}

			for _, arg := range args {
				if next, removed := workspace.Remove(entries, arg); removed {
					entries = next
					ok("Removed %s", arg)
					continue
				}

				code := strings.ToUpper(arg)
				removedAny := false
				for {
					found := ""
					for _, e := range entries {
						if strings.EqualFold(e.BookID, code) {
							found = e.ID
							break
						}
					}
					if found == "" {
						break
					}
					entries, _ = workspace.Remove(entries, found)
					ok("Removed %s (%s)", code, found)
					removedAny = true
				}
				if !removedAny {
					return fmt.Errorf("no entry matches %q", arg)
				}
			}

			return saveWorkspace(entries)
		},
	}
}
