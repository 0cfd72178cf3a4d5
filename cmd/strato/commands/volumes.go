package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewVolumesCommand creates the volumes command group
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volumes",
		Aliases: []string{"volume"},
		Short:   "Manage volumes",
		Long:    "Create block storage volumes and attach them to servers",
	}

	cmd.AddCommand(newVolumesListCommand())
	cmd.AddCommand(newVolumesGetCommand())
	cmd.AddCommand(newVolumesCreateCommand())
	cmd.AddCommand(newVolumesUpdateCommand())
	cmd.AddCommand(newVolumesDeleteCommand())
	cmd.AddCommand(newVolumesAttachCommand())
	cmd.AddCommand(newVolumesDetachCommand())
	cmd.AddCommand(newVolumesResizeCommand())

	return cmd
}

var volumeListHeaders = []string{"id", "name", "size", "server", "status", "location", "labels"}

func volumeRows(volumes []strato.Volume) [][]string {
	rows := make([][]string, 0, len(volumes))

	for _, volume := range volumes {
		location := NotAvailable
		if volume.Location != nil {
			location = volume.Location.Name
		}

		rows = append(rows, []string{
			strconv.FormatInt(volume.ID, 10),
			volume.Name,
			fmt.Sprintf("%d GB", volume.Size),
			formatOptionalID(volume.Server),
			volume.Status,
			location,
			formatLabels(volume.Labels),
		})
	}

	return rows
}

func volumePairs(volume *strato.Volume) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(volume.ID, 10)},
		{"Name", volume.Name},
		{"Size", fmt.Sprintf("%d GB", volume.Size)},
		{"Status", volume.Status},
		{"Server", formatOptionalID(volume.Server)},
		{"Created", formatTime(&volume.Created)},
	}

	if volume.LinuxDevice != "" {
		pairs = append(pairs, []string{"Device", volume.LinuxDevice})
	}

	if volume.Format != "" {
		pairs = append(pairs, []string{"Format", volume.Format})
	}

	if volume.Location != nil {
		pairs = append(pairs, []string{"Location", volume.Location.Name})
	}

	if len(volume.Labels) > 0 {
		pairs = append(pairs, []string{"Labels", formatLabels(volume.Labels)})
	}

	return pairs
}

func newVolumesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			volumes, _, err := client.Volumes().List(context.Background(), listOptsFromFlags(cmd))
			if err != nil {
				return fmt.Errorf("failed to list volumes: %w", err)
			}

			return renderList(volumes, volumeListHeaders, volumeRows(volumes))
		},
	}

	addListFlags(cmd)

	return cmd
}

func newVolumesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VOLUME_ID",
		Short: "Show volume details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "volume")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			volume, err := client.Volumes().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get volume: %w", err)
			}

			return renderDetail(volume, volumePairs(volume))
		},
	}
}

func newVolumesCreateCommand() *cobra.Command {
	var (
		name      string
		size      int
		server    int64
		location  string
		format    string
		automount bool
		labels    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a volume",
		Long:  "Create a volume in a location or attached to a server right away",
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

			request := &strato.VolumeCreateRequest{
				Name:     name,
				Size:     size,
				Location: location,
				Format:   format,
				Labels:   labelMap,
			}

			if server > 0 {
				request.Server = &server
			}

			if cmd.Flags().Changed("automount") {
				request.Automount = &automount
			}

			volume, err := client.Volumes().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create volume: %w", err)
			}

			if wait, _ := cmd.Flags().GetBool("wait"); wait && volume.Action != nil {
				return finishAction(cmd, client, volume.Action)
			}

			return renderDetail(volume, volumePairs(volume))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "volume name")
	cmd.Flags().IntVar(&size, "size", 10, "size in GB")
	cmd.Flags().Int64Var(&server, "server", 0, "server to attach to")
	cmd.Flags().StringVar(&location, "location", "", "location (when not attaching to a server)")
	cmd.Flags().StringVar(&format, "format", "", "filesystem to create (e.g. ext4)")
	cmd.Flags().BoolVar(&automount, "automount", false, "mount the volume automatically")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")
	addWaitFlag(cmd)

	return cmd
}

func newVolumesUpdateCommand() *cobra.Command {
	var (
		name   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "update VOLUME_ID",
		Short: "Update a volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "volume")
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

			volume, err := client.Volumes().Update(context.Background(), id, &strato.VolumeUpdateRequest{
				Name:   name,
				Labels: labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to update volume: %w", err)
			}

			return renderDetail(volume, volumePairs(volume))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newVolumesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete VOLUME_ID",
		Short: "Delete a volume",
		Long:  "Delete a volume; it must be detached first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "volume")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Volumes().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete volume: %w", err)
			}

			fmt.Printf("Volume %d deleted\n", id)

			return nil
		},
	}
}

func newVolumesAttachCommand() *cobra.Command {
	var (
		server    int64
		automount bool
	)

	cmd := &cobra.Command{
		Use:   "attach VOLUME_ID",
		Short: "Attach a volume to a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "volume")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &strato.VolumeAttachRequest{Server: server}
			if cmd.Flags().Changed("automount") {
				request.Automount = &automount
			}

			action, err := client.Volumes().Attach(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to attach volume: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().Int64Var(&server, "server", 0, "server to attach to")
	cmd.Flags().BoolVar(&automount, "automount", false, "mount the volume automatically")
	_ = cmd.MarkFlagRequired("server")
	addWaitFlag(cmd)

	return cmd
}

func newVolumesDetachCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach VOLUME_ID",
		Short: "Detach a volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "volume")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Volumes().Detach(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to detach volume: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	addWaitFlag(cmd)

	return cmd
}

func newVolumesResizeCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "resize VOLUME_ID",
		Short: "Grow a volume",
		Long:  "Grow a volume; shrinking is not possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "volume")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Volumes().Resize(context.Background(), id, size)
			if err != nil {
				return fmt.Errorf("failed to resize volume: %w", err)
			}

			return finishAction(cmd, client, action)
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "new size in GB")
	_ = cmd.MarkFlagRequired("size")
	addWaitFlag(cmd)

	return cmd
}
