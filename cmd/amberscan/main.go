// Package main provides the amberscan command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amberscan",
		Short: "Scan transcript FASTA files for amber stop-codon readthrough candidates",
		Long: `amberscan processes a GENCODE-style protein-coding transcript FASTA file,
finds transcripts whose CDS terminates in the amber stop codon (TAG), and
computes the hypothetical C-terminal extension produced if a suppressor
tRNA reads through that stop.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.amberscan.yaml if present. A missing config file
// is not an error; flags carry their own defaults.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.SetConfigFile(filepath.Join(home, ".amberscan.yaml"))
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig()
}
