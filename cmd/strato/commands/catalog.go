package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewISOsCommand creates the isos command group
func NewISOsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "isos",
		Aliases: []string{"iso"},
		Short:   "Browse available ISO images",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List ISOs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			isos, _, err := client.ISOs().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list ISOs: %w", err)
			}

			rows := make([][]string, 0, len(isos))
			for _, iso := range isos {
				rows = append(rows, []string{
					strconv.FormatInt(iso.ID, 10), iso.Name, iso.Description, iso.Type,
				})
			}

			return renderList(isos, []string{"id", "name", "description", "type"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get ISO_ID",
		Short: "Show ISO details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ISO")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			iso, err := client.ISOs().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get ISO: %w", err)
			}

			return renderDetail(iso, [][]string{
				{"ID", strconv.FormatInt(iso.ID, 10)},
				{"Name", iso.Name},
				{"Description", iso.Description},
				{"Type", iso.Type},
			})
		},
	})

	addListFlags(cmd.Commands()[0])

	return cmd
}

// NewLocationsCommand creates the locations command group
func NewLocationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "locations",
		Aliases: []string{"location"},
		Short:   "Browse physical locations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			locations, _, err := client.Locations().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list locations: %w", err)
			}

			rows := make([][]string, 0, len(locations))
			for _, location := range locations {
				rows = append(rows, []string{
					strconv.FormatInt(location.ID, 10),
					location.Name,
					location.Description,
					location.City,
					location.Country,
					location.NetworkZone,
				})
			}

			return renderList(locations, []string{"id", "name", "description", "city", "country", "network zone"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get LOCATION_ID",
		Short: "Show location details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "location")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			location, err := client.Locations().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get location: %w", err)
			}

			return renderDetail(location, locationPairs(location))
		},
	})

	addListFlags(cmd.Commands()[0])

	return cmd
}

func locationPairs(location *strato.Location) [][]string {
	return [][]string{
		{"ID", strconv.FormatInt(location.ID, 10)},
		{"Name", location.Name},
		{"Description", location.Description},
		{"City", location.City},
		{"Country", location.Country},
		{"Network Zone", location.NetworkZone},
		{"Coordinates", fmt.Sprintf("%.4f, %.4f", location.Latitude, location.Longitude)},
	}
}

// NewDatacentersCommand creates the datacenters command group
func NewDatacentersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "datacenters",
		Aliases: []string{"datacenter"},
		Short:   "Browse datacenters",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List datacenters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			datacenters, _, err := client.Datacenters().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list datacenters: %w", err)
			}

			rows := make([][]string, 0, len(datacenters))
			for _, datacenter := range datacenters {
				location := NotAvailable
				if datacenter.Location != nil {
					location = datacenter.Location.Name
				}

				rows = append(rows, []string{
					strconv.FormatInt(datacenter.ID, 10),
					datacenter.Name,
					datacenter.Description,
					location,
				})
			}

			return renderList(datacenters, []string{"id", "name", "description", "location"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get DATACENTER_ID",
		Short: "Show datacenter details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "datacenter")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			datacenter, err := client.Datacenters().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get datacenter: %w", err)
			}

			pairs := [][]string{
				{"ID", strconv.FormatInt(datacenter.ID, 10)},
				{"Name", datacenter.Name},
				{"Description", datacenter.Description},
			}

			if datacenter.Location != nil {
				pairs = append(pairs, []string{"Location", datacenter.Location.Name})
			}

			return renderDetail(datacenter, pairs)
		},
	})

	addListFlags(cmd.Commands()[0])

	return cmd
}

// NewServerTypesCommand creates the server-types command group
func NewServerTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server-types",
		Aliases: []string{"server-type"},
		Short:   "Browse bookable server types",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List server types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			serverTypes, _, err := client.ServerTypes().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list server types: %w", err)
			}

			rows := make([][]string, 0, len(serverTypes))
			for _, serverType := range serverTypes {
				rows = append(rows, serverTypeRow(serverType))
			}

			return renderList(serverTypes, []string{"id", "name", "cores", "memory", "disk", "storage"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get SERVER_TYPE_ID",
		Short: "Show server type details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "server type")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			serverType, err := client.ServerTypes().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get server type: %w", err)
			}

			return renderDetail(serverType, [][]string{
				{"ID", strconv.FormatInt(serverType.ID, 10)},
				{"Name", serverType.Name},
				{"Description", serverType.Description},
				{"Cores", strconv.Itoa(serverType.Cores)},
				{"Memory", fmt.Sprintf("%.1f GB", serverType.Memory)},
				{"Disk", fmt.Sprintf("%d GB", serverType.Disk)},
				{"Storage Type", serverType.StorageType},
			})
		},
	})

	addListFlags(cmd.Commands()[0])

	return cmd
}

func serverTypeRow(serverType strato.ServerType) []string {
	return []string{
		strconv.FormatInt(serverType.ID, 10),
		serverType.Name,
		strconv.Itoa(serverType.Cores),
		fmt.Sprintf("%.1f GB", serverType.Memory),
		fmt.Sprintf("%d GB", serverType.Disk),
		serverType.StorageType,
	}
}
