package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/strato-io/strato/pkg/strato"
)

// NewActionsCommand creates the actions command group
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "Inspect asynchronous actions",
		Long:    "List, inspect and wait for the asynchronous actions behind server and volume operations",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())
	cmd.AddCommand(newActionsWaitCommand())

	return cmd
}

var actionListHeaders = []string{"id", "command", "status", "progress", "started", "finished"}

func actionRows(actions []strato.Action) [][]string {
	rows := make([][]string, 0, len(actions))

	for _, action := range actions {
		started := action.Started

		rows = append(rows, []string{
			strconv.FormatInt(action.ID, 10),
			action.Command,
			action.Status,
			fmt.Sprintf("%d%%", action.Progress),
			formatTime(&started),
			formatTime(action.Finished),
		})
	}

	return rows
}

func newActionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := listOptsFromFlags(cmd)
			if status, _ := cmd.Flags().GetString("status"); status != "" {
				opts.WithFilter("status", status)
			}

			actions, _, err := client.Actions().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list actions: %w", err)
			}

			return renderList(actions, actionListHeaders, actionRows(actions))
		},
	}

	addListFlags(cmd)
	cmd.Flags().String("status", "", "filter by status (running, success, error)")

	return cmd
}

func newActionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACTION_ID",
		Short: "Show action details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "action")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			action, err := client.Actions().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get action: %w", err)
			}

			return renderDetail(action, actionPairs(action))
		},
	}
}

func newActionsWaitCommand() *cobra.Command {
	var maxWait time.Duration

	cmd := &cobra.Command{
		Use:   "wait ACTION_ID",
		Short: "Wait for an action to finish",
		Long:  "Poll an action until it leaves the running status or the wait budget runs out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "action")
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			var action *strato.Action
			if cmd.Flags().Changed("max-wait") {
				action, err = client.Actions().WaitFor(context.Background(), id, maxWait)
			} else {
				action, err = client.Actions().Wait(context.Background(), id)
			}

			if err != nil {
				return fmt.Errorf("waiting for action %d: %w", id, err)
			}

			if action.Status == strato.ActionStatusError {
				message := "unknown"
				if action.Error != nil {
					message = fmt.Sprintf("%s: %s", action.Error.Code, action.Error.Message)
				}

				return fmt.Errorf("%w: %s", ErrActionFailed, message)
			}

			return renderDetail(action, actionPairs(action))
		},
	}

	cmd.Flags().DurationVar(&maxWait, "max-wait", 0, "maximum time to wait")

	return cmd
}
