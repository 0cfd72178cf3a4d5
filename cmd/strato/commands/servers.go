package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewServersCommand creates the servers command group
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "servers",
		Aliases: []string{"server"},
		Short:   "Manage servers",
		Long:    "Create, inspect, and control servers and their lifecycle actions",
	}

	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersGetCommand())
	cmd.AddCommand(newServersCreateCommand())
	cmd.AddCommand(newServersUpdateCommand())
	cmd.AddCommand(newServersDeleteCommand())
	cmd.AddCommand(newServersPowerCommand("poweron", "Power a server on", (strato.ServersClient).PowerOn))
	cmd.AddCommand(newServersPowerCommand("poweroff", "Power a server off (hard cut)", (strato.ServersClient).PowerOff))
	cmd.AddCommand(newServersPowerCommand("reboot", "Reboot a server gracefully", (strato.ServersClient).Reboot))
	cmd.AddCommand(newServersPowerCommand("reset", "Reset a server (hard reboot)", (strato.ServersClient).Reset))
	cmd.AddCommand(newServersPowerCommand("shutdown", "Shut a server down via ACPI", (strato.ServersClient).Shutdown))
	cmd.AddCommand(newServersResetPasswordCommand())
	cmd.AddCommand(newServersEnableRescueCommand())
	cmd.AddCommand(newServersPowerCommand("disable-rescue", "Disable rescue mode", (strato.ServersClient).DisableRescue))
	cmd.AddCommand(newServersCreateImageCommand())
	cmd.AddCommand(newServersRebuildCommand())
	cmd.AddCommand(newServersChangeTypeCommand())
	cmd.AddCommand(newServersAttachISOCommand())
	cmd.AddCommand(newServersPowerCommand("detach-iso", "Detach the mounted ISO", (strato.ServersClient).DetachISO))
	cmd.AddCommand(newServersChangeDNSPtrCommand())
	cmd.AddCommand(newServersConsoleCommand())

	return cmd
}

func serverRows(servers []strato.Server) [][]string {
	rows := make([][]string, 0, len(servers))

	for _, server := range servers {
		ip := NotAvailable
		if server.PublicNet != nil && server.PublicNet.IPv4 != nil {
			ip = server.PublicNet.IPv4.IP
		}

		serverType := NotAvailable
		if server.ServerType != nil {
			serverType = server.ServerType.Name
		}

		datacenter := NotAvailable
		if server.Datacenter != nil {
			datacenter = server.Datacenter.Name
		}

		rows = append(rows, []string{
			strconv.FormatInt(server.ID, 10),
			server.Name,
			server.Status,
			ip,
			serverType,
			datacenter,
			formatLabels(server.Labels),
		})
	}

	return rows
}

var serverListHeaders = []string{"id", "name", "status", "ipv4", "type", "datacenter", "labels"}

func newServersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := listOptsFromFlags(cmd)
			if status, _ := cmd.Flags().GetString("status"); status != "" {
				opts.WithFilter("status", status)
			}

			servers, _, err := client.Servers().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			return renderList(servers, serverListHeaders, serverRows(servers))
		},
	}

	addListFlags(cmd)
	cmd.Flags().String("status", "", "filter by status")

	return cmd
}

func serverPairs(server *strato.Server) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(server.ID, 10)},
		{"Name", server.Name},
		{"Status", server.Status},
		{"Created", formatTime(&server.Created)},
	}

	if server.PublicNet != nil && server.PublicNet.IPv4 != nil {
		pairs = append(pairs, []string{"IPv4", server.PublicNet.IPv4.IP})
		pairs = append(pairs, []string{"DNS Ptr", server.PublicNet.IPv4.DNSPtr})
	}

	if server.PublicNet != nil && server.PublicNet.IPv6 != nil {
		pairs = append(pairs, []string{"IPv6", server.PublicNet.IPv6.IP})
	}

	if server.ServerType != nil {
		pairs = append(pairs, []string{"Type", server.ServerType.Name})
	}

	if server.Datacenter != nil {
		pairs = append(pairs, []string{"Datacenter", server.Datacenter.Name})
	}

	if server.Image != nil {
		pairs = append(pairs, []string{"Image", server.Image.Name})
	}

	if server.ISO != nil {
		pairs = append(pairs, []string{"ISO", server.ISO.Name})
	}

	if server.Locked {
		pairs = append(pairs, []string{"Locked", Yes})
	}

	if server.RescueEnable {
		pairs = append(pairs, []string{"Rescue", Yes})
	}

	if len(server.Labels) > 0 {
		pairs = append(pairs, []string{"Labels", formatLabels(server.Labels)})
	}

	if server.RootPassword != "" {
		pairs = append(pairs, []string{"Root Password", server.RootPassword})
	}

	if server.Action != nil {
		pairs = append(pairs, []string{"Action", fmt.Sprintf("%d (%s, %s)", server.Action.ID, server.Action.Command, server.Action.Status)})
	}

	return pairs
}

func newServersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVER_ID",
		Short: "Show server details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			server, err := client.Servers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get server: %w", err)
			}

			return renderDetail(server, serverPairs(server))
		},
	}
}

func newServersCreateCommand() *cobra.Command {
	var (
		name       string
		serverType string
		image      string
		datacenter string
		location   string
		sshKeys    []int64
		volumes    []int64
		networks   []int64
		userData   string
		labels     []string
		noStart    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a server",
		Long:  "Create a server and print the generated root password when no SSH key was injected",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			labelMap, err := parseLabels(labels)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &strato.ServerCreateRequest{
				Name:       name,
				ServerType: serverType,
				Image:      image,
				Datacenter: datacenter,
				Location:   location,
				SSHKeys:    sshKeys,
				Volumes:    volumes,
				Networks:   networks,
				UserData:   userData,
				Labels:     labelMap,
			}

			if noStart {
				startAfterCreate := false
				request.StartAfterCreate = &startAfterCreate
			}

			server, err := client.Servers().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			if wait, _ := cmd.Flags().GetBool("wait"); wait && server.Action != nil {
				return finishAction(cmd, client, server.Action)
			}

			return renderDetail(server, serverPairs(server))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "server name")
	cmd.Flags().StringVar(&serverType, "type", "", "server type name or ID")
	cmd.Flags().StringVar(&image, "image", "", "image name or ID")
	cmd.Flags().StringVar(&datacenter, "datacenter", "", "datacenter name or ID")
	cmd.Flags().StringVar(&location, "location", "", "location name or ID")
	cmd.Flags().Int64SliceVar(&sshKeys, "ssh-key", nil, "SSH key ID to inject (repeatable)")
	cmd.Flags().Int64SliceVar(&volumes, "volume", nil, "volume ID to attach (repeatable)")
	cmd.Flags().Int64SliceVar(&networks, "network", nil, "network ID to join (repeatable)")
	cmd.Flags().StringVar(&userData, "user-data", "", "cloud-init user data")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")
	cmd.Flags().BoolVar(&noStart, "no-start", false, "do not start the server after creation")
	addWaitFlag(cmd)

	return cmd
}

func newServersUpdateCommand() *cobra.Command {
	var (
		name   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "update SERVER_ID",
		Short: "Update a server's name or labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
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

			server, err := client.Servers().Update(context.Background(), id, &strato.ServerUpdateRequest{
				Name:   name,
				Labels: labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to update server: %w", err)
			}

			return renderDetail(server, serverPairs(server))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new server name")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newServersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SERVER_ID",
		Short: "Delete a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Servers().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete server: %w", err)
			}

			fmt.Printf("Server %d deleted\n", id)

			return nil
		},
	}
}

// newServersPowerCommand builds the argument-less action subcommands; they
// differ only in name and the client method they invoke.
func newServersPowerCommand(use, short string, invoke func(strato.ServersClient, context.Context, int64) (*strato.Action, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " SERVER_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := invoke(client.Servers(), context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to %s server: %w", use, err)
			}

			return finishAction(cmd, client, action)
		},
	}

	addWaitFlag(cmd)

	return cmd
}

func newServersResetPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-password SERVER_ID",
		Short: "Reset the root password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Servers().ResetPassword(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to reset password: %w", err)
			}

			pairs := [][]string{{"Root Password", result.RootPassword}}
			if result.Action != nil {
				pairs = append(pairs, actionPairs(result.Action)...)
			}

			return renderDetail(result, pairs)
		},
	}

	return cmd
}

func newServersEnableRescueCommand() *cobra.Command {
	var (
		rescueType string
		sshKeys    []int64
	)

	cmd := &cobra.Command{
		Use:   "enable-rescue SERVER_ID",
		Short: "Enable rescue mode",
		Long:  "Enable the rescue system; it boots on the next restart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Servers().EnableRescue(context.Background(), id, &strato.ServerEnableRescueRequest{
				Type:    rescueType,
				SSHKeys: sshKeys,
			})
			if err != nil {
				return fmt.Errorf("failed to enable rescue: %w", err)
			}

			pairs := [][]string{{"Root Password", result.RootPassword}}
			if result.Action != nil {
				pairs = append(pairs, actionPairs(result.Action)...)
			}

			return renderDetail(result, pairs)
		},
	}

	cmd.Flags().StringVar(&rescueType, "type", "linux64", "rescue system type")
	cmd.Flags().Int64SliceVar(&sshKeys, "ssh-key", nil, "SSH key ID to inject (repeatable)")

	return cmd
}

func newServersCreateImageCommand() *cobra.Command {
	var (
		description string
		imageType   string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "create-image SERVER_ID",
		Short: "Create an image from a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
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

			image, err := client.Servers().CreateImage(context.Background(), id, &strato.ServerCreateImageRequest{
				Description: description,
				Type:        imageType,
				Labels:      labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to create image: %w", err)
			}

			if wait, _ := cmd.Flags().GetBool("wait"); wait && image.Action != nil {
				return finishAction(cmd, client, image.Action)
			}

			return renderDetail(image, imagePairs(image))
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "image description")
	cmd.Flags().StringVar(&imageType, "type", "snapshot", "image type (snapshot, backup)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")
	addWaitFlag(cmd)

	return cmd
}

func newServersRebuildCommand() *cobra.Command {
	var image string

	cmd := &cobra.Command{
		Use:   "rebuild SERVER_ID",
		Short: "Rebuild a server from an image",
		Long:  "Overwrite the server's disk from an image; all data on it is lost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Servers().Rebuild(context.Background(), id, &strato.ServerRebuildRequest{Image: image})
			if err != nil {
				return fmt.Errorf("failed to rebuild server: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "image name or ID to rebuild from")
	_ = cmd.MarkFlagRequired("image")
	addWaitFlag(cmd)

	return cmd
}

func newServersChangeTypeCommand() *cobra.Command {
	var (
		serverType  string
		upgradeDisk bool
	)

	cmd := &cobra.Command{
		Use:   "change-type SERVER_ID",
		Short: "Change a server's type",
		Long:  "Scale a server to another type; it must be powered off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Servers().ChangeType(context.Background(), id, &strato.ServerChangeTypeRequest{
				ServerType:  serverType,
				UpgradeDisk: upgradeDisk,
			})
			if err != nil {
				return fmt.Errorf("failed to change server type: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&serverType, "type", "", "target server type")
	cmd.Flags().BoolVar(&upgradeDisk, "upgrade-disk", false, "also grow the disk (cannot be scaled down later)")
	_ = cmd.MarkFlagRequired("type")
	addWaitFlag(cmd)

	return cmd
}

func newServersAttachISOCommand() *cobra.Command {
	var iso string

	cmd := &cobra.Command{
		Use:   "attach-iso SERVER_ID",
		Short: "Attach an ISO to a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Servers().AttachISO(context.Background(), id, &strato.ServerAttachISORequest{ISO: iso})
			if err != nil {
				return fmt.Errorf("failed to attach ISO: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&iso, "iso", "", "ISO name or ID")
	_ = cmd.MarkFlagRequired("iso")
	addWaitFlag(cmd)

	return cmd
}

func newServersChangeDNSPtrCommand() *cobra.Command {
	var (
		ip     string
		dnsPtr string
	)

	cmd := &cobra.Command{
		Use:   "change-dns-ptr SERVER_ID",
		Short: "Change a server's reverse DNS entry",
		Long:  "Set the reverse DNS pointer for one of the server's IPs; omit --dns-ptr to reset to the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &strato.ChangeDNSPtrRequest{IP: ip}
			if cmd.Flags().Changed("dns-ptr") {
				request.DNSPtr = &dnsPtr
			}

			action, err := client.Servers().ChangeDNSPtr(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to change reverse DNS: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&ip, "ip", "", "IP address the entry belongs to")
	cmd.Flags().StringVar(&dnsPtr, "dns-ptr", "", "hostname to set (omit to reset)")
	_ = cmd.MarkFlagRequired("ip")
	addWaitFlag(cmd)

	return cmd
}

func newServersConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console SERVER_ID",
		Short: "Request VNC console access",
		Long:  "Request websocket console credentials; the password is valid for a single connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			console, err := client.Servers().RequestConsole(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to request console: %w", err)
			}

			pairs := [][]string{
				{"WSS URL", console.WSSURL},
				{"Password", console.Password},
			}

			return renderDetail(console, pairs)
		},
	}
}
