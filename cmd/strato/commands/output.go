package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/strato-io/strato/internal/constants"
)

// JSON formatting.
const defaultJSONIndent = "  "

var headerCaser = cases.Title(language.English)

// renderList writes a resource collection in the selected output format.
// value is the raw resource slice used for json/yaml; headers and rows feed
// the table, csv, and shell renderers.
func renderList(value interface{}, headers []string, rows [][]string) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(value)
	case constants.FormatYAML:
		return renderYAML(value)
	case constants.FormatCSV:
		return renderCSV(headers, rows)
	case constants.FormatShell:
		return renderShellRows(headers, rows)
	default:
		renderTable(headers, rows)

		return nil
	}
}

// renderDetail writes a single resource. pairs is an ordered list of
// {field, value} tuples for the table, csv, and shell renderers.
func renderDetail(value interface{}, pairs [][]string) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(value)
	case constants.FormatYAML:
		return renderYAML(value)
	case constants.FormatCSV:
		return renderCSV([]string{"field", "value"}, pairs)
	case constants.FormatShell:
		for _, pair := range pairs {
			fmt.Printf("%s=%s\n", shellKey(pair[0]), shellQuote(pair[1]))
		}

		return nil
	default:
		for _, pair := range pairs {
			fmt.Printf("%-12s %s\n", pair[0]+":", pair[1])
		}

		return nil
	}
}

func renderJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	return encoder.Encode(value)
}

func renderYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(value)
}

func renderTable(headers []string, rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)

	titled := make([]any, 0, len(headers))
	for _, header := range headers {
		titled = append(titled, headerCaser.String(header))
	}

	table.Header(titled...)

	for _, row := range rows {
		cells := make([]any, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}

		_ = table.Append(cells...)
	}

	_ = table.Render()
}

func renderCSV(headers []string, rows [][]string) error {
	writer := csv.NewWriter(os.Stdout)

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// renderShellRows prints one eval-able line per field under HEADER_N style
// keys when multiple rows exist. The row index is a suffix: a shell variable
// name cannot start with a digit.
func renderShellRows(headers []string, rows [][]string) error {
	for i, row := range rows {
		suffix := ""
		if len(rows) > 1 {
			suffix = fmt.Sprintf("_%d", i)
		}

		for j, cell := range row {
			if j >= len(headers) {
				break
			}

			fmt.Printf("%s%s=%s\n", shellKey(headers[j]), suffix, shellQuote(cell))
		}
	}

	return nil
}

// shellKey converts a header into a shell variable name.
func shellKey(header string) string {
	key := strings.ToUpper(header)
	key = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, key)

	return key
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
