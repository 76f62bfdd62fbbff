package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/griffithind/parsekit/internal/config"
	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration parsekit is running with and where it came from.

The config file is looked up in this order:
  1. --config flag
  2. $PARSEKIT_CONFIG
  3. ./.parsekit.json
  4. $XDG_CONFIG_HOME/parsekit/config.json

The file is JSON with comments allowed. NO_COLOR, PARSEKIT_NO_COLOR, and
PARSEKIT_OUTPUT override it, and command-line flags override everything.

Examples:
  parsekit config
  parsekit config -o yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigOutput represents the output of the config command.
type ConfigOutput struct {
	Source string         `json:"source" yaml:"source"`
	Config *config.Config `json:"config" yaml:"config"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	if output.IsStructured() {
		return output.Render(ConfigOutput{Source: activeConfig.Source(), Config: activeConfig})
	}

	ui.Result("%s", ui.FormatLabel("Source", activeConfig.Source()))
	ui.Result("")
	return ui.RenderTable([]string{"SETTING", "VALUE"}, configRows(activeConfig))
}

func configRows(cfg *config.Config) [][]string {
	return [][]string{
		{"csv.delimiter", strconv.Quote(cfg.CSV.Delimiter)},
		{"csv.quote", strconv.Quote(cfg.CSV.Quote)},
		{"kv.pairDelimiter", strconv.Quote(cfg.KV.PairDelimiter)},
		{"kv.keyValueDelimiter", strconv.Quote(cfg.KV.KeyValueDelimiter)},
		{"size.mode", cfg.SizeMode().String()},
		{"output.format", cfg.Output.Format},
		{"output.noColor", strconv.FormatBool(cfg.Output.NoColor)},
	}
}

func init() {
	configCmd.GroupID = "utilities"
	rootCmd.AddCommand(configCmd)
}
