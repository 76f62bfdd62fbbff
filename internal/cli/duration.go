package cli

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/parse"
	"github.com/griffithind/parsekit/internal/ui"
)

var durationFile string

var durationCmd = &cobra.Command{
	Use:     "duration <expr>",
	Aliases: []string{"dur"},
	Short:   "Convert a duration expression to milliseconds",
	Long: `Convert a human duration such as "1h 30m" or "2.5 days" to milliseconds.

Every <number><unit> token is summed. Supported units:
  ms, s, m, h, d, w (and spelled-out forms such as "minutes" or "wks")

Units are case-insensitive. "m" is minutes and "ms" is milliseconds.

Examples:
  parsekit duration 1d 2h 30m 45s
  parsekit dur 90s -o json`,
	RunE: runDuration,
}

// DurationResult is the duration command output.
type DurationResult struct {
	Input        string `json:"input" yaml:"input"`
	Milliseconds int64  `json:"milliseconds" yaml:"milliseconds"`
	Duration     string `json:"duration,omitempty" yaml:"duration,omitempty"`
}

func runDuration(cmd *cobra.Command, args []string) error {
	text, err := stdinSource(args, durationFile).readValue("duration")
	if err != nil {
		return err
	}

	ms, err := parse.ParseDuration(text)
	if err != nil {
		return err
	}
	result := newDurationResult(text, ms)

	if output.IsStructured() {
		return output.Render(result)
	}
	if ui.IsQuiet() {
		ui.Result("%d", result.Milliseconds)
		return nil
	}
	ui.Result("%s", ui.FormatLabel("Milliseconds", humanize.Comma(result.Milliseconds)))
	if result.Duration != "" {
		ui.Result("%s", ui.FormatLabel("Duration", ui.Code(result.Duration)))
	}
	return nil
}

// newDurationResult builds the result. Duration is left empty when the
// total does not fit in a time.Duration.
func newDurationResult(input string, ms int64) DurationResult {
	r := DurationResult{Input: input, Milliseconds: ms}
	if d, err := parse.ParseDurationValue(input); err == nil {
		r.Duration = d.String()
	}
	return r
}

func init() {
	durationCmd.Flags().StringVarP(&durationFile, "file", "f", "", "read expression from file")

	durationCmd.GroupID = "parsers"
	rootCmd.AddCommand(durationCmd)
}

