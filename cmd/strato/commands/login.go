package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/strato-io/strato/pkg/strato"
	"github.com/strato-io/strato/pkg/stratoclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		endpoint string
		token    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Strato API endpoint",
		Long:  "Verify an API token against an endpoint and store both in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if endpoint == "" {
				endpoint = viper.GetString("endpoint")
			}

			if endpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				endpoint, _ = reader.ReadString('\n')
				endpoint = strings.TrimSpace(endpoint)
			}

			if endpoint == "" {
				return ErrEndpointRequired
			}

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			config := &strato.Config{
				Endpoint: endpoint,
				Token:    token,
			}

			client, err := stratoclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials with a cheap read-only call.
			if _, _, err := client.Locations().List(context.Background(), nil); err != nil {
				if strato.IsUnauthorized(err) {
					return fmt.Errorf("token rejected by %s: %w", config.Endpoint, err)
				}

				return fmt.Errorf("verifying credentials: %w", err)
			}

			viper.Set("endpoint", config.Endpoint)
			viper.Set("token", token)

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s\n", config.Endpoint)

			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "API endpoint URL")
	cmd.Flags().StringVar(&token, "token", "", "API token (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
