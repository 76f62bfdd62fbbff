package cli

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/parse"
	"github.com/griffithind/parsekit/internal/ui"
)

var (
	sizeDecimal bool
	sizeBinary  bool
	sizeFile    string
)

var sizeCmd = &cobra.Command{
	Use:   "size <expr>",
	Short: "Convert a data size to bytes",
	Long: `Convert a data size such as "1.5GB" or "512 kb" to bytes.

Units are B, KB, MB, GB, TB, PB, EB, ZB, and YB in any case. By default
a kilobyte is 1024 bytes; --decimal uses 1000. The default can also be set
with "size.mode" in the config file.

Examples:
  parsekit size 1.5GB
  parsekit size --decimal 250MB -o yaml`,
	RunE: runSize,
}

// SizeResult is the size command output.
type SizeResult struct {
	Input string `json:"input" yaml:"input"`
	Mode  string `json:"mode" yaml:"mode"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
	Human string `json:"human" yaml:"human"`
}

func runSize(cmd *cobra.Command, args []string) error {
	mode := activeConfig.SizeMode()
	switch {
	case sizeDecimal:
		mode = parse.Decimal
	case sizeBinary:
		mode = parse.Binary
	}

	text, err := stdinSource(args, sizeFile).readValue("size")
	if err != nil {
		return err
	}

	bytes, err := parse.ParseDataSize(text, mode)
	if err != nil {
		return err
	}
	result := newSizeResult(text, bytes, mode)

	if output.IsStructured() {
		return output.Render(result)
	}
	if ui.IsQuiet() {
		ui.Result("%d", result.Bytes)
		return nil
	}
	ui.Result("%s", ui.FormatLabel("Bytes", humanize.Comma(result.Bytes)))
	ui.Result("%s", ui.FormatLabel("Human", result.Human+" "+ui.Dim("("+result.Mode+")")))
	return nil
}

// newSizeResult renders bytes back in the units of the chosen mode.
func newSizeResult(input string, bytes int64, mode parse.SizeMode) SizeResult {
	human := humanize.IBytes(uint64(bytes))
	if mode == parse.Decimal {
		human = humanize.Bytes(uint64(bytes))
	}
	return SizeResult{Input: input, Mode: mode.String(), Bytes: bytes, Human: human}
}

func init() {
	sizeCmd.Flags().BoolVar(&sizeDecimal, "decimal", false, "use 1000 bytes per kilobyte")
	sizeCmd.Flags().BoolVar(&sizeBinary, "binary", false, "use 1024 bytes per kilobyte")
	sizeCmd.Flags().StringVarP(&sizeFile, "file", "f", "", "read expression from file")
	sizeCmd.MarkFlagsMutuallyExclusive("decimal", "binary")

	sizeCmd.GroupID = "parsers"
	rootCmd.AddCommand(sizeCmd)
}
