// Package app wires the perfsync commands together.
package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gatewaytools/perfsync/internal/config"
	"github.com/gatewaytools/perfsync/internal/dcs"
	"github.com/gatewaytools/perfsync/internal/engine"
	"github.com/gatewaytools/perfsync/internal/stage"
	"github.com/gatewaytools/perfsync/internal/util"
)

var (
	cfg      *config.Config
	dcsCli   *dcs.Client
	eng      *engine.Engine
	stageMgr *stage.Manager

	flagNoColor       bool
	flagNoInteractive bool
)

var appVersion = "dev"

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "perfsync",
	Short: "Synchronize Scripture books from a DCS server into PERF documents",
	Long: `perfsync keeps a workspace of requested Scripture books in step with a
Door43 Content Service (DCS) server.

Books are requested by canonical code, USFM file URL, or local upload.
A sync pass fetches whatever is missing, converts the USFM to PERF, and
loads it into the in-memory document engine. Converted documents can be
exported to a stage directory for other tools to pick up.

Quick start:
  1. perfsync init --owner unfoldingWord --language en
  2. export DCS_TOKEN=your_token
  3. perfsync add GEN PSA JHN
  4. perfsync sync --variant literal --stage`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			// init must be able to run before a config file exists.
			if cmd.Name() == "init" {
				cfg = &config.Config{}
				return nil
			}
			return fmt.Errorf("loading config: %w", err)
		}

		eng = engine.New(engine.DefaultHistorySize)
		stageMgr = stage.New(cfg.Defaults.StageDir)
		if cfg.DCS.Token != "" {
			dcsCli = dcs.New(cfg.DCS.Token, cfg.DCS.Server)
		}
		return nil
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newBooksCmd(),
		newSyncCmd(),
		newRemoveCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
