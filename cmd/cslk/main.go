package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/cslk/config"

	_ "github.com/tliron/commonlog/simple"
)

var (
	configPath string
	verbose    int
	conf       = config.NewConfig()
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cslk",
		Short:        "A table-driven C99 parser",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			conf = c
			verbosity := conf.Log.Verbosity + verbose
			var path *string
			if conf.Log.File != "" {
				path = &conf.Log.File
			}
			commonlog.Configure(verbosity, path)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "raise log verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newSetsCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newMonitorCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
