package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gatewaytools/perfsync/internal/config"
	"github.com/gatewaytools/perfsync/internal/syncer"
)

func newInitCmd() *cobra.Command {
	var (
		server   string
		owner    string
		language string
		variant  string
		tokenEnv string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the perfsync config file",
		Long: `Write the perfsync configuration.

perfsync resolves book requests against a DCS (Door43 Content Service)
organization. The owner and language select the content repository:
unfoldingWord publishes en_ult/en_ust, gateway-language organizations
publish <language>_glt/<language>_gst.

The access token is never written to the config file. Set it in the
environment variable named by --token-env (default DCS_TOKEN).`,
		Example: `  # Sync from unfoldingWord English
  perfsync init --owner unfoldingWord --language en

  # A gateway language organization on another server
  perfsync init --server https://qa.door43.org --owner es-419_gl --language es-419`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			if language == "" {
				return fmt.Errorf("--language is required")
			}
			if variant != "" {
				if _, err := syncer.ParseVariant(variant); err != nil {
					return err
				}
			}

			current, err := config.Load()
			if err != nil {
				current = &config.Config{}
			}
			current.DCS.Server = server
			current.DCS.Owner = owner
			current.DCS.LanguageID = language
			if tokenEnv != "" {
				current.DCS.TokenEnv = tokenEnv
			}
			if variant != "" {
				current.Defaults.Variant = variant
			}

			if err := config.Save(current); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			cfg = current

			ok("Config written")
			fmt.Printf("  config:   %s\n", color.CyanString(config.DefaultPath()))
			fmt.Printf("  server:   %s\n", server)
			fmt.Printf("  owner:    %s\n", owner)
			fmt.Printf("  language: %s\n", language)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Printf("  1. Export your DCS token:\n")
			fmt.Printf("     %s\n\n", color.CyanString("export "+current.DCS.TokenEnv+"=your_token"))
			fmt.Printf("  2. Add books to the workspace:\n")
			fmt.Printf("     %s\n\n", color.CyanString("perfsync add GEN PSA JHN"))
			fmt.Printf("  3. Run a sync:\n")
			fmt.Printf("     %s\n", color.CyanString("perfsync sync --variant literal"))
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "https://git.door43.org", "DCS server base URL")
	cmd.Flags().StringVar(&owner, "owner", "", "DCS organization that owns the content repos")
	cmd.Flags().StringVar(&language, "language", "", "Language identifier (e.g. en, es-419)")
	cmd.Flags().StringVar(&variant, "variant", "", "Default variant: literal or simplified")
	cmd.Flags().StringVar(&tokenEnv, "token-env", "", "Environment variable holding the DCS token (default DCS_TOKEN)")

	return cmd
}
