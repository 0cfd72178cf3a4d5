package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/strato-io/strato/cmd/strato/commands"
	"github.com/strato-io/strato/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "strato",
	Short: "Strato cloud CLI",
	Long: `A command-line interface for the Strato cloud API.

Manage servers, floating IPs, SSH keys, volumes, networks, and images,
and follow the asynchronous actions these operations produce.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.strato/config.yml)")
	rootCmd.PersistentFlags().String("endpoint", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringP("token", "t", "", "API token")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml, csv, shell)")
	rootCmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")
	rootCmd.PersistentFlags().Duration("poll-interval", constants.DefaultPollInterval, "delay between action poll attempts")
	rootCmd.PersistentFlags().Duration("poll-max-wait", constants.DefaultPollMaxWait, "total budget when waiting for actions")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("poll_interval", rootCmd.PersistentFlags().Lookup("poll-interval"))
	_ = viper.BindPFlag("poll_max_wait", rootCmd.PersistentFlags().Lookup("poll-max-wait"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewServersCommand())
	rootCmd.AddCommand(commands.NewFloatingIPsCommand())
	rootCmd.AddCommand(commands.NewSSHKeysCommand())
	rootCmd.AddCommand(commands.NewVolumesCommand())
	rootCmd.AddCommand(commands.NewNetworksCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
	rootCmd.AddCommand(commands.NewActionsCommand())
	rootCmd.AddCommand(commands.NewISOsCommand())
	rootCmd.AddCommand(commands.NewLocationsCommand())
	rootCmd.AddCommand(commands.NewDatacentersCommand())
	rootCmd.AddCommand(commands.NewServerTypesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".strato")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.strato/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("STRATO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
