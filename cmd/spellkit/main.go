package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"spellkit/internal/logger"
)

const appName = "spellkit"

var (
	Version = "0.1.0"

	cfgPath  string
	logLevel string
	cfg      *Config
)

var appDir = filepath.Join(xdg.StateHome, appName)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Context-aware spelling correction",
	Long:          "Trains and serves a spelling-correction model combining a symmetric-delete dictionary, script-aware phonetic matching and a co-occurrence context model.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(filepath.Join(appDir, appName+".log"), logLevel)
		var err error
		cfg, err = LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(trainCmd, correctCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
