package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewNetworksCommand creates the networks command group
func NewNetworksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"network"},
		Short:   "Manage private networks",
		Long:    "Create private networks and manage their subnets and IP ranges",
	}

	cmd.AddCommand(newNetworksListCommand())
	cmd.AddCommand(newNetworksGetCommand())
	cmd.AddCommand(newNetworksCreateCommand())
	cmd.AddCommand(newNetworksUpdateCommand())
	cmd.AddCommand(newNetworksDeleteCommand())
	cmd.AddCommand(newNetworksAddSubnetCommand())
	cmd.AddCommand(newNetworksDeleteSubnetCommand())
	cmd.AddCommand(newNetworksChangeIPRangeCommand())

	return cmd
}

var networkListHeaders = []string{"id", "name", "ip range", "subnets", "servers", "labels"}

func networkRows(networks []strato.Network) [][]string {
	rows := make([][]string, 0, len(networks))

	for _, network := range networks {
		rows = append(rows, []string{
			strconv.FormatInt(network.ID, 10),
			network.Name,
			network.IPRange,
			strconv.Itoa(len(network.Subnets)),
			strconv.Itoa(len(network.Servers)),
			formatLabels(network.Labels),
		})
	}

	return rows
}

func networkPairs(network *strato.Network) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(network.ID, 10)},
		{"Name", network.Name},
		{"IP Range", network.IPRange},
		{"Created", formatTime(&network.Created)},
	}

	for _, subnet := range network.Subnets {
		detail := fmt.Sprintf("%s (%s, %s)", subnet.IPRange, subnet.Type, subnet.NetworkZone)
		pairs = append(pairs, []string{"Subnet", detail})
	}

	for _, route := range network.Routes {
		pairs = append(pairs, []string{"Route", fmt.Sprintf("%s via %s", route.Destination, route.Gateway)})
	}

	if len(network.Servers) > 0 {
		ids := make([]string, 0, len(network.Servers))
		for _, id := range network.Servers {
			ids = append(ids, strconv.FormatInt(id, 10))
		}

		pairs = append(pairs, []string{"Servers", strings.Join(ids, ", ")})
	}

	if len(network.Labels) > 0 {
		pairs = append(pairs, []string{"Labels", formatLabels(network.Labels)})
	}

	return pairs
}

func newNetworksListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			networks, _, err := client.Networks().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list networks: %w", err)
			}

			return renderList(networks, networkListHeaders, networkRows(networks))
		},
	}

	addListFlags(cmd)

	return cmd
}

func newNetworksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NETWORK_ID",
		Short: "Show network details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "network")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			network, err := client.Networks().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get network: %w", err)
			}

			return renderDetail(network, networkPairs(network))
		},
	}
}

func newNetworksCreateCommand() *cobra.Command {
	var (
		name    string
		ipRange string
		subnets []string
		labels  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a network",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			labelMap, err := parseLabels(labels)
			if err != nil {
				return err
			}

			request := &strato.NetworkCreateRequest{
				Name:    name,
				IPRange: ipRange,
				Labels:  labelMap,
			}

			for _, subnet := range subnets {
				parsed, err := parseSubnet(subnet)
				if err != nil {
					return err
				}

				request.Subnets = append(request.Subnets, parsed)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			network, err := client.Networks().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create network: %w", err)
			}

			return renderDetail(network, networkPairs(network))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "network name")
	cmd.Flags().StringVar(&ipRange, "ip-range", "", "network IP range in CIDR notation")
	cmd.Flags().StringSliceVar(&subnets, "subnet", nil, "subnet as ip-range,type,network-zone (repeatable)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")
	_ = cmd.MarkFlagRequired("ip-range")

	return cmd
}

// parseSubnet splits an ip-range,type,network-zone triple. Type and zone may
// be omitted and default to cloud/zone-1.
func parseSubnet(value string) (strato.NetworkSubnet, error) {
	parts := strings.Split(value, ",")
	if parts[0] == "" {
		//nolint:err113 // user-facing argument error
		return strato.NetworkSubnet{}, fmt.Errorf("invalid subnet %q: ip range is required", value)
	}

	subnet := strato.NetworkSubnet{
		IPRange:     parts[0],
		Type:        "cloud",
		NetworkZone: "zone-1",
	}

	if len(parts) > 1 && parts[1] != "" {
		subnet.Type = parts[1]
	}

	if len(parts) > 2 && parts[2] != "" {
		subnet.NetworkZone = parts[2]
	}

	return subnet, nil
}

func newNetworksUpdateCommand() *cobra.Command {
	var (
		name   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "update NETWORK_ID",
		Short: "Update a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "network")
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

			network, err := client.Networks().Update(context.Background(), id, &strato.NetworkUpdateRequest{
				Name:   name,
				Labels: labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to update network: %w", err)
			}

			return renderDetail(network, networkPairs(network))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newNetworksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NETWORK_ID",
		Short: "Delete a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "network")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Networks().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete network: %w", err)
			}

			fmt.Printf("Network %d deleted\n", id)

			return nil
		},
	}
}

func newNetworksAddSubnetCommand() *cobra.Command {
	var (
		ipRange     string
		subnetType  string
		networkZone string
	)

	cmd := &cobra.Command{
		Use:   "add-subnet NETWORK_ID",
		Short: "Add a subnet to a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "network")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Networks().AddSubnet(context.Background(), id, strato.NetworkSubnet{
				IPRange:     ipRange,
				Type:        subnetType,
				NetworkZone: networkZone,
			})
			if err != nil {
				return fmt.Errorf("failed to add subnet: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&ipRange, "ip-range", "", "subnet IP range in CIDR notation")
	cmd.Flags().StringVar(&subnetType, "type", "cloud", "subnet type")
	cmd.Flags().StringVar(&networkZone, "network-zone", "zone-1", "network zone")
	_ = cmd.MarkFlagRequired("ip-range")
	addWaitFlag(cmd)

	return cmd
}

func newNetworksDeleteSubnetCommand() *cobra.Command {
	var ipRange string

	cmd := &cobra.Command{
		Use:   "delete-subnet NETWORK_ID",
		Short: "Remove a subnet from a network",
		Long:  "Remove a subnet; it must have no attached servers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "network")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Networks().DeleteSubnet(context.Background(), id, ipRange)
			if err != nil {
				return fmt.Errorf("failed to delete subnet: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&ipRange, "ip-range", "", "IP range of the subnet to remove")
	_ = cmd.MarkFlagRequired("ip-range")
	addWaitFlag(cmd)

	return cmd
}

func newNetworksChangeIPRangeCommand() *cobra.Command {
	var ipRange string

	cmd := &cobra.Command{
		Use:   "change-ip-range NETWORK_ID",
		Short: "Expand the IP range of a network",
		Long:  "Expand the IP range; the new range must contain all existing subnets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "network")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Networks().ChangeIPRange(context.Background(), id, ipRange)
			if err != nil {
				return fmt.Errorf("failed to change ip range: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().StringVar(&ipRange, "ip-range", "", "new IP range in CIDR notation")
	_ = cmd.MarkFlagRequired("ip-range")
	addWaitFlag(cmd)

	return cmd
}
