package cli

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
	"github.com/griffithind/parsekit/internal/util"
)

// inputSource describes where a parser command reads its text from.
type inputSource struct {
	Args            []string
	File            string
	Stdin           io.Reader
	StdinIsTerminal bool
}

// stdinSource returns an inputSource bound to the process stdin.
func stdinSource(args []string, file string) inputSource {
	return inputSource{
		Args:            args,
		File:            file,
		Stdin:           os.Stdin,
		StdinIsTerminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// read returns the command input. Positional arguments are joined with a
// single space; otherwise the file is read, then stdin when it is piped.
func (s inputSource) read(command string) (string, error) {
	if len(s.Args) > 0 {
		return strings.Join(s.Args, " "), nil
	}

	if s.File != "" {
		path := util.ExpandHome(s.File)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", pkerrors.FileRead(path, err)
		}
		util.With("source", path, "bytes", len(data)).Debug("read input")
		return string(data), nil
	}

	if s.Stdin != nil && !s.StdinIsTerminal {
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", pkerrors.FileRead("<stdin>", err)
		}
		util.With("source", "stdin", "bytes", len(data)).Debug("read input")
		return string(data), nil
	}

	return "", pkerrors.NoInput(command)
}

// readValue is read with the trailing line break removed, for commands that
// take a single value.
func (s inputSource) readValue(command string) (string, error) {
	text, err := s.read(command)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// splitLines splits text into lines, dropping carriage returns and
// whitespace-only lines. Line numbers are preserved.
func splitLines(text string) []numberedLine {
	var lines []numberedLine
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, numberedLine{Number: i + 1, Text: line})
	}
	return lines
}

type numberedLine struct {
	Number int
	Text   string
}
