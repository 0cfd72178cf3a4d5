package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/strato-io/strato/pkg/strato"
	"github.com/strato-io/strato/pkg/stratoclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Yes          = "yes"
	No           = "no"
)

// Common static errors used throughout the commands package.
var (
	ErrEndpointRequired = errors.New("API endpoint is required (use --endpoint or 'strato login')")
	ErrTokenRequired    = errors.New("API token is required (use --token or 'strato login')")
	ErrNameRequired     = errors.New("name is required")
	ErrActionFailed     = errors.New("action finished with an error")
)

// createClient builds an API client from the active configuration: flags
// first, then config file, then STRATO_* environment variables.
func createClient() (strato.Client, error) {
	endpoint := viper.GetString("endpoint")
	token := viper.GetString("token")

	// A token file keeps the secret out of the config file and process list.
	if token == "" {
		if tokenFile := viper.GetString("token_file"); tokenFile != "" {
			raw, err := os.ReadFile(tokenFile)
			if err != nil {
				return nil, fmt.Errorf("reading token file: %w", err)
			}

			token = strings.TrimSpace(string(raw))
		}
	}

	if endpoint == "" {
		return nil, ErrEndpointRequired
	}

	if token == "" {
		return nil, ErrTokenRequired
	}

	config := &strato.Config{
		Endpoint:     endpoint,
		Token:        token,
		PollInterval: viper.GetDuration("poll_interval"),
		PollMaxWait:  viper.GetDuration("poll_max_wait"),
	}

	if viper.GetBool("debug") {
		config.Debug = true
		config.Logger = newCLILogger()
	}

	client, err := stratoclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parseID parses a positional resource identifier argument.
func parseID(arg, resource string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", resource, arg) //nolint:err113 // user-facing argument error
	}

	return id, nil
}

// addWaitFlag registers the --wait flag on commands that start an action.
func addWaitFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("wait", false, "wait for the action to finish")
}

// finishAction prints the action reference and, when --wait was given,
// drives it to completion.
func finishAction(cmd *cobra.Command, client strato.Client, action *strato.Action) error {
	wait, _ := cmd.Flags().GetBool("wait")
	if !wait {
		return renderDetail(action, actionPairs(action))
	}

	done, err := client.Actions().Wait(context.Background(), action.ID)
	if err != nil {
		return fmt.Errorf("waiting for action %d: %w", action.ID, err)
	}

	if done.Status == strato.ActionStatusError {
		message := "unknown"
		if done.Error != nil {
			message = fmt.Sprintf("%s: %s", done.Error.Code, done.Error.Message)
		}

		return fmt.Errorf("%w: %s", ErrActionFailed, message)
	}

	return renderDetail(done, actionPairs(done))
}

// actionPairs flattens an action for detail output.
func actionPairs(action *strato.Action) [][]string {
	pairs := [][]string{
		{"ID", strconv.FormatInt(action.ID, 10)},
		{"Command", action.Command},
		{"Status", action.Status},
		{"Progress", fmt.Sprintf("%d%%", action.Progress)},
		{"Started", formatTime(&action.Started)},
		{"Finished", formatTime(action.Finished)},
	}

	if action.Error != nil {
		pairs = append(pairs, []string{"Error", fmt.Sprintf("%s: %s", action.Error.Code, action.Error.Message)})
	}

	for _, resource := range action.Resources {
		pairs = append(pairs, []string{"Resource", fmt.Sprintf("%s %d", resource.Type, resource.ID)})
	}

	return pairs
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}

	return t.Format("2006-01-02 15:04:05")
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for key, value := range labels {
		pairs = append(pairs, key+"="+value)
	}

	return strings.Join(pairs, ",")
}

// parseLabels parses repeated key=value label flags.
func parseLabels(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	labels := make(map[string]string, len(raw))

	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid label %q, expected key=value", pair) //nolint:err113 // user-facing argument error
		}

		labels[key] = value
	}

	return labels, nil
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return NotAvailable
	}

	return strconv.FormatInt(*id, 10)
}

// listOptsFromFlags assembles ListOpts from the shared list flags.
func listOptsFromFlags(cmd *cobra.Command) *strato.ListOpts {
	opts := strato.NewListOpts()

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		opts.WithFilter("name", name)
	}

	if selector, _ := cmd.Flags().GetString("selector"); selector != "" {
		opts.WithFilter("label_selector", selector)
	}

	if sort, _ := cmd.Flags().GetString("sort"); sort != "" {
		opts.WithSort(sort)
	}

	if page, _ := cmd.Flags().GetInt("page"); page > 0 {
		opts.WithPage(page)
	}

	if perPage, _ := cmd.Flags().GetInt("per-page"); perPage > 0 {
		opts.WithPerPage(perPage)
	}

	return opts
}

// addListFlags registers the shared list flags.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "filter by name")
	cmd.Flags().StringP("selector", "l", "", "filter by label selector")
	cmd.Flags().String("sort", "", "sort key (e.g. name:asc)")
	cmd.Flags().Int("page", 0, "page to fetch")
	cmd.Flags().Int("per-page", 0, "results per page")
}
