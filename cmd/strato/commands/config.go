package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/strato-io/strato/internal/constants"
)

// Config keys the CLI understands. Everything else in the config file is
// passed through untouched.
var knownConfigKeys = []string{
	"endpoint",
	"token",
	"token_file",
	"output",
	"debug",
	"poll_interval",
	"poll_max_wait",
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Read and write settings in the config file",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := map[string]string{}
			rows := make([][]string, 0, len(knownConfigKeys))

			for _, key := range knownConfigKeys {
				value := viper.GetString(key)
				if key == "token" && value != "" {
					value = "***"
				}

				settings[key] = value
				rows = append(rows, []string{key, value})
			}

			return renderList(settings, []string{"key", "value"}, rows)
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isKnownConfigKey(key) {
				return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(knownConfigKeys, ", ")) //nolint:err113 // user-facing argument error
			}

			fmt.Println(viper.GetString(key))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !isKnownConfigKey(key) {
				return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(knownConfigKeys, ", ")) //nolint:err113 // user-facing argument error
			}

			viper.Set(key, value)

			return writeConfig()
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isKnownConfigKey(key) {
				return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(knownConfigKeys, ", ")) //nolint:err113 // user-facing argument error
			}

			viper.Set(key, "")

			return writeConfig()
		},
	}
}

func isKnownConfigKey(key string) bool {
	for _, known := range knownConfigKeys {
		if key == known {
			return true
		}
	}

	return false
}

// writeConfig persists the persistent config keys to the config file.
// Command-line flags and environment variables are deliberately not written
// back; only the known file-backed keys are serialized.
func writeConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".strato")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	settings := map[string]string{}

	for _, key := range knownConfigKeys {
		if value := viper.GetString(key); value != "" {
			settings[key] = value
		}
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
