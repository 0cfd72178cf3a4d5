package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewFloatingIPsCommand creates the floating-ips command group
func NewFloatingIPsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "floating-ips",
		Aliases: []string{"floating-ip", "fip"},
		Short:   "Manage floating IPs",
		Long:    "Create floating IPs and move them between servers",
	}

	cmd.AddCommand(newFloatingIPsListCommand())
	cmd.AddCommand(newFloatingIPsGetCommand())
	cmd.AddCommand(newFloatingIPsCreateCommand())
	cmd.AddCommand(newFloatingIPsUpdateCommand())
	cmd.AddCommand(newFloatingIPsDeleteCommand())
	cmd.AddCommand(newFloatingIPsAssignCommand())
	cmd.AddCommand(newFloatingIPsUnassignCommand())
	cmd.AddCommand(newFloatingIPsChangeDNSPtrCommand())

	return cmd
}

var floatingIPListHeaders = []string{"id", "name", "ip", "type", "server", "location", "labels"}

func floatingIPRows(floatingIPs []strato.FloatingIP) [][]string {
	rows := make([][]string, 0, len(floatingIPs))

	for _, fip := range floatingIPs {
		location := NotAvailable
		if fip.HomeLocation != nil {
			location = fip.HomeLocation.Name
		}

		rows = append(rows, []string{
			strconv.FormatInt(fip.ID, 10),
			fip.Name,
			fip.IP,
			fip.Type,
			formatOptionalID(fip.Server),
			location,
			formatLabels(fip.Labels),
		})
	}

	return rows
}

func floatingIPPairs(fip *strato.FloatingIP) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(fip.ID, 10)},
		{"Name", fip.Name},
		{"IP", fip.IP},
		{"Type", fip.Type},
		{"Server", formatOptionalID(fip.Server)},
		{"Created", formatTime(&fip.Created)},
	}

	if fip.Description != "" {
		pairs = append(pairs, []string{"Description", fip.Description})
	}

	if fip.HomeLocation != nil {
		pairs = append(pairs, []string{"Location", fip.HomeLocation.Name})
	}

	for _, ptr := range fip.DNSPtr {
		pairs = append(pairs, []string{"DNS Ptr", fmt.Sprintf("%s -> %s", ptr.IP, ptr.DNSPtr)})
	}

	if len(fip.Labels) > 0 {
		pairs = append(pairs, []string{"Labels", formatLabels(fip.Labels)})
	}

	return pairs
}

func newFloatingIPsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List floating IPs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			floatingIPs, _, err := client.FloatingIPs().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list floating IPs: %w", err)
			}

			return renderList(floatingIPs, floatingIPListHeaders, floatingIPRows(floatingIPs))
		},
	}

	addListFlags(cmd)

	return cmd
}

func newFloatingIPsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FLOATING_IP_ID",
		Short: "Show floating IP details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "floating IP")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			fip, err := client.FloatingIPs().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get floating IP: %w", err)
			}

			return renderDetail(fip, floatingIPPairs(fip))
		},
	}
}

func newFloatingIPsCreateCommand() *cobra.Command {
	var (
		ipType       string
		name         string
		description  string
		server       int64
		homeLocation string
		labels       []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a floating IP",
		Long:  "Create a floating IP, optionally assigning it to a server right away",
		RunE: func(cmd *cobra.Command, args []string) error {
			labelMap, err := parseLabels(labels)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &strato.FloatingIPCreateRequest{
				Type:         ipType,
				Name:         name,
				Description:  description,
				HomeLocation: homeLocation,
				Labels:       labelMap,
			}

			if server > 0 {
				request.Server = &server
			}

			fip, err := client.FloatingIPs().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create floating IP: %w", err)
			}

			if wait, _ := cmd.Flags().GetBool("wait"); wait && fip.Action != nil {
				return finishAction(cmd, client, fip.Action)
			}

			return renderDetail(fip, floatingIPPairs(fip))
		},
	}

	cmd.Flags().StringVar(&ipType, "type", "ipv4", "address family (ipv4, ipv6)")
	cmd.Flags().StringVar(&name, "name", "", "floating IP name")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().Int64Var(&server, "server", 0, "server to assign to")
	cmd.Flags().StringVar(&homeLocation, "home-location", "", "home location (when not assigning to a server)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")
	addWaitFlag(cmd)

	return cmd
}

func newFloatingIPsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "update FLOATING_IP_ID",
		Short: "Update a floating IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "floating IP")
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

			fip, err := client.FloatingIPs().Update(context.Background(), id, &strato.FloatingIPUpdateRequest{
				Name:        name,
				Description: description,
				Labels:      labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to update floating IP: %w", err)
			}

			return renderDetail(fip, floatingIPPairs(fip))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newFloatingIPsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete FLOATING_IP_ID",
		Short: "Delete a floating IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "floating IP")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.FloatingIPs().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete floating IP: %w", err)
			}

			fmt.Printf("Floating IP %d deleted\n", id)

			return nil
		},
	}
}

func newFloatingIPsAssignCommand() *cobra.Command {
	var server int64

	cmd := &cobra.Command{
		Use:   "assign FLOATING_IP_ID",
		Short: "Assign a floating IP to a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "floating IP")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.FloatingIPs().Assign(context.Background(), id, server)
			if err != nil {
				return fmt.Errorf("failed to assign floating IP: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().Int64Var(&server, "server", 0, "server to assign to")
	_ = cmd.MarkFlagRequired("server")
	addWaitFlag(cmd)

	return cmd
}

func newFloatingIPsUnassignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign FLOATING_IP_ID",
		Short: "Unassign a floating IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "floating IP")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.FloatingIPs().Unassign(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to unassign floating IP: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	addWaitFlag(cmd)

	return cmd
}

func newFloatingIPsChangeDNSPtrCommand() *cobra.Command {
	var (
		ip     string
		dnsPtr string
	)

	cmd := &cobra.Command{
		Use:   "change-dns-ptr FLOATING_IP_ID",
		Short: "Change a floating IP's reverse DNS entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "floating IP")
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

			action, err := client.FloatingIPs().ChangeDNSPtr(context.Background(), id, request)
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
