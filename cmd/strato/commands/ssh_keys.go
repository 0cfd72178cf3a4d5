package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewSSHKeysCommand creates the ssh-keys command group
func NewSSHKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ssh-keys",
		Aliases: []string{"ssh-key"},
		Short:   "Manage SSH keys",
		Long:    "Upload and manage SSH public keys for server provisioning",
	}

	cmd.AddCommand(newSSHKeysListCommand())
	cmd.AddCommand(newSSHKeysGetCommand())
	cmd.AddCommand(newSSHKeysCreateCommand())
	cmd.AddCommand(newSSHKeysUpdateCommand())
	cmd.AddCommand(newSSHKeysDeleteCommand())

	return cmd
}

var sshKeyListHeaders = []string{"id", "name", "fingerprint", "labels"}

func sshKeyRows(keys []strato.SSHKey) [][]string {
	rows := make([][]string, 0, len(keys))

	for _, key := range keys {
		rows = append(rows, []string{
			strconv.FormatInt(key.ID, 10),
			key.Name,
			key.Fingerprint,
			formatLabels(key.Labels),
		})
	}

	return rows
}

func sshKeyPairs(key *strato.SSHKey) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(key.ID, 10)},
		{"Name", key.Name},
		{"Fingerprint", key.Fingerprint},
		{"Created", formatTime(&key.Created)},
	}

	if len(key.Labels) > 0 {
		pairs = append(pairs, []string{"Labels", formatLabels(key.Labels)})
	}

	return pairs
}

func newSSHKeysListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := listOptsFromFlags(cmd)
			if fingerprint, _ := cmd.Flags().GetString("fingerprint"); fingerprint != "" {
				opts.WithFilter("fingerprint", fingerprint)
			}

			keys, _, err := client.SSHKeys().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list SSH keys: %w", err)
			}

			return renderList(keys, sshKeyListHeaders, sshKeyRows(keys))
		},
	}

	addListFlags(cmd)
	cmd.Flags().String("fingerprint", "", "filter by fingerprint")

	return cmd
}

func newSSHKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SSH_KEY_ID",
		Short: "Show SSH key details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "SSH key")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			key, err := client.SSHKeys().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get SSH key: %w", err)
			}

			return renderDetail(key, sshKeyPairs(key))
		},
	}
}

func newSSHKeysCreateCommand() *cobra.Command {
	var (
		name          string
		publicKey     string
		publicKeyFile string
		labels        []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload an SSH key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			if publicKey == "" && publicKeyFile != "" {
				raw, err := os.ReadFile(publicKeyFile)
				if err != nil {
					return fmt.Errorf("reading public key file: %w", err)
				}

				publicKey = strings.TrimSpace(string(raw))
			}

			if publicKey == "" {
				return fmt.Errorf("public key is required (use --public-key or --public-key-file)") //nolint:err113 // user-facing argument error
			}

			labelMap, err := parseLabels(labels)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			key, err := client.SSHKeys().Create(context.Background(), &strato.SSHKeyCreateRequest{
				Name:      name,
				PublicKey: publicKey,
				Labels:    labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to create SSH key: %w", err)
			}

			return renderDetail(key, sshKeyPairs(key))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "key name")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "public key in OpenSSH format")
	cmd.Flags().StringVar(&publicKeyFile, "public-key-file", "", "file containing the public key")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newSSHKeysUpdateCommand() *cobra.Command {
	var (
		name   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "update SSH_KEY_ID",
		Short: "Update an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "SSH key")
			if err != nil {
				return err
			}

			labelMap, err := parseLabels(labels)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			key, err := client.SSHKeys().Update(context.Background(), id, &strato.SSHKeyUpdateRequest{
				Name:   name,
				Labels: labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to update SSH key: %w", err)
			}

			return renderDetail(key, sshKeyPairs(key))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newSSHKeysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SSH_KEY_ID",
		Short: "Delete an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "SSH key")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.SSHKeys().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete SSH key: %w", err)
			}

			fmt.Printf("SSH key %d deleted\n", id)

			return nil
		},
	}
}
