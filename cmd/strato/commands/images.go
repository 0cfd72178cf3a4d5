package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewImagesCommand creates the images command group
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long:    "List system images and manage snapshots and backups",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesGetCommand())
	cmd.AddCommand(newImagesUpdateCommand())
	cmd.AddCommand(newImagesDeleteCommand())

	return cmd
}

var imageListHeaders = []string{"id", "type", "name", "description", "image size", "disk size", "created"}

func imageRows(images []strato.Image) [][]string {
	rows := make([][]string, 0, len(images))

	for _, image := range images {
		imageSize := NotAvailable
		if image.ImageSize > 0 {
			imageSize = fmt.Sprintf("%.2f GB", image.ImageSize)
		}

		created := image.Created

		rows = append(rows, []string{
			strconv.FormatInt(image.ID, 10),
			image.Type,
			image.Name,
			image.Description,
			imageSize,
			fmt.Sprintf("%d GB", image.DiskSize),
			formatTime(&created),
		})
	}

	return rows
}

func imagePairs(image *strato.Image) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(image.ID, 10)},
		{"Type", image.Type},
		{"Status", image.Status},
		{"Name", image.Name},
		{"Description", image.Description},
		{"Disk Size", fmt.Sprintf("%d GB", image.DiskSize)},
		{"OS Flavor", image.OSFlavor},
		{"Created", formatTime(&image.Created)},
	}

	if image.ImageSize > 0 {
		pairs = append(pairs, []string{"Image Size", fmt.Sprintf("%.2f GB", image.ImageSize)})
	}

	if image.OSVersion != "" {
		pairs = append(pairs, []string{"OS Version", image.OSVersion})
	}

	if image.CreatedFrom != nil {
		pairs = append(pairs, []string{"Created From", fmt.Sprintf("%s %d", image.CreatedFrom.Type, image.CreatedFrom.ID)})
	}

	if image.BoundTo != nil {
		pairs = append(pairs, []string{"Bound To", strconv.FormatInt(*image.BoundTo, 10)})
	}

	if len(image.Labels) > 0 {
		pairs = append(pairs, []string{"Labels", formatLabels(image.Labels)})
	}

	return pairs
}

func newImagesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := listOptsFromFlags(cmd)
			if imageType, _ := cmd.Flags().GetString("type"); imageType != "" {
				opts.WithFilter("type", imageType)
			}

			images, _, err := client.Images().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			return renderList(images, imageListHeaders, imageRows(images))
		},
	}

	addListFlags(cmd)
	cmd.Flags().String("type", "", "filter by type (system, snapshot, backup)")

	return cmd
}

func newImagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IMAGE_ID",
		Short: "Show image details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "image")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			image, err := client.Images().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get image: %w", err)
			}

			return renderDetail(image, imagePairs(image))
		},
	}
}

func newImagesUpdateCommand() *cobra.Command {
	var (
		description string
		imageType   string
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "update IMAGE_ID",
		Short: "Update an image",
		Long:  "Update an image description or convert a backup to a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "image")
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

			image, err := client.Images().Update(context.Background(), id, &strato.ImageUpdateRequest{
				Description: description,
				Type:        imageType,
				Labels:      labelMap,
			})
			if err != nil {
				return fmt.Errorf("failed to update image: %w", err)
			}

			return renderDetail(image, imagePairs(image))
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&imageType, "type", "", "convert to this type (snapshot)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label in key=value form (repeatable)")

	return cmd
}

func newImagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete IMAGE_ID",
		Short: "Delete an image",
		Long:  "Delete a snapshot or backup; system images cannot be deleted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "image")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Images().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete image: %w", err)
			}

			fmt.Printf("Image %d deleted\n", id)

			return nil
		},
	}
}
