package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/parse"
	"github.com/griffithind/parsekit/internal/ui"
)

var (
	kvPairDelimiter     string
	kvKeyValueDelimiter string
	kvFile              string
)

var kvCmd = &cobra.Command{
	Use:   "kv [input]",
	Short: "Parse key=value pair lists",
	Long: `Parse a delimited list of key/value pairs such as "a=1;b=2".

Keys and values are trimmed. Empty pairs are skipped and a repeated key keeps
its last value.

Examples:
  parsekit kv 'host=db; port=5432'
  parsekit kv --pair-delim '&' 'a=1&b=2'
  env | parsekit kv --pair-delim '\n' -o yaml`,
	RunE: runKV,
}

func runKV(cmd *cobra.Command, args []string) error {
	opts := activeConfig.KeyValueOptions()
	if cmd.Flags().Changed("pair-delim") {
		opts.PairDelimiter = unescapeDelimiter(kvPairDelimiter)
	}
	if cmd.Flags().Changed("kv-delim") {
		opts.KeyValueDelimiter = unescapeDelimiter(kvKeyValueDelimiter)
	}

	text, err := stdinSource(args, kvFile).readValue("kv")
	if err != nil {
		return err
	}

	pairs, err := parse.ParseKeyValueWith(text, opts)
	if err != nil {
		return err
	}

	if output.IsStructured() {
		return output.Render(pairs)
	}
	return ui.RenderTable([]string{"KEY", "VALUE"}, pairRows(pairs))
}

// pairRows returns key/value rows sorted by key.
func pairRows(pairs map[string]string) [][]string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, pairs[k]})
	}
	return rows
}

// unescapeDelimiter turns the shell-friendly spellings \n and \t into the
// characters they name.
func unescapeDelimiter(s string) string {
	switch s {
	case `\n`:
		return "\n"
	case `\t`:
		return "\t"
	}
	return s
}

func init() {
	kvCmd.Flags().StringVar(&kvPairDelimiter, "pair-delim", ";", `separator between pairs (\n and \t accepted)`)
	kvCmd.Flags().StringVar(&kvKeyValueDelimiter, "kv-delim", "=", "separator between key and value")
	kvCmd.Flags().StringVarP(&kvFile, "file", "f", "", "read input from file")

	kvCmd.GroupID = "parsers"
	rootCmd.AddCommand(kvCmd)
}
