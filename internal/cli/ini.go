package cli

import (
	"github.com/spf13/cobra"

	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/parse"
	"github.com/griffithind/parsekit/internal/ui"
)

var iniCmd = &cobra.Command{
	Use:   "ini [file]",
	Short: "Parse an INI document",
	Long: `Parse an INI document into sections of key/value pairs.

Pairs before the first [section] header belong to the "global" section.
Lines starting with ; or # are comments, and an unescaped ; or # starts an
inline comment. Use \; and \# for literal characters.

The document is read from the file argument, or from stdin when piped.

Examples:
  parsekit ini settings.ini
  cat settings.ini | parsekit ini -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runINI,
}

func runINI(cmd *cobra.Command, args []string) error {
	src := stdinSource(nil, "")
	if len(args) == 1 {
		src.File = args[0]
	}

	text, err := src.read("ini")
	if err != nil {
		return err
	}

	doc, err := parse.ParseINI(text)
	if err != nil {
		return err
	}

	if output.IsStructured() {
		return output.Render(doc)
	}
	return renderINI(doc)
}

func renderINI(doc parse.INI) error {
	if len(doc) == 0 {
		ui.Warning("document has no sections")
		return nil
	}

	for i, name := range doc.Sections() {
		if i > 0 && !ui.IsQuiet() {
			ui.Result("")
		}
		ui.Heading("[" + name + "]")

		pairs := doc[name]
		if len(pairs) == 0 {
			if !ui.IsQuiet() {
				ui.Result("%s", ui.Dim("(empty)"))
			}
			continue
		}
		if err := ui.RenderTable([]string{"KEY", "VALUE"}, pairRows(pairs)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	iniCmd.GroupID = "parsers"
	rootCmd.AddCommand(iniCmd)
}
