package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configKeys are the settings the scan command reads. Set rejects
// anything else so typos don't silently land in the config file.
var configKeys = map[string]struct {
	description string
	validate    func(string) error
}{
	"scan.residue": {
		description: "amino acid inserted at the amber codon (single uppercase letter)",
		validate: func(v string) error {
			if len(v) != 1 || v[0] < 'A' || v[0] > 'Z' {
				return fmt.Errorf("residue must be a single uppercase amino acid letter, got %q", v)
			}
			return nil
		},
	},
	"scan.workers": {
		description: "simulation worker count (0 = all CPUs)",
		validate: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("workers must be a non-negative integer, got %q", v)
			}
			return nil
		},
	},
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage amberscan configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.amberscan.yaml.",
		Example: `  amberscan config                      # show all config
  amberscan config set scan.residue Q   # suppressor inserts glutamine
  amberscan config get scan.residue     # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("# No configuration set. Config file: ~/.amberscan.yaml")
		fmt.Println("# Available keys:")
		for _, key := range sortedConfigKeys() {
			fmt.Printf("#   %s  %s\n", key, configKeys[key].description)
		}
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runConfigSet(key, value string) error {
	spec, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown key %q (available: %v)", key, sortedConfigKeys())
	}
	if err := spec.validate(value); err != nil {
		return err
	}
	viper.Set(key, value)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".amberscan.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown key %q (available: %v)", key, sortedConfigKeys())
	}
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}

func sortedConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
