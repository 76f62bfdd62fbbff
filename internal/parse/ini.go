package parse

import (
	"sort"
	"strings"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// GlobalSection holds the pairs that appear before the first section header.
const GlobalSection = "global"

// INI maps a section name to its key-value pairs.
type INI map[string]map[string]string

// Get returns the value of key in section.
func (d INI) Get(section, key string) (string, bool) {
	s, ok := d[section]
	if !ok {
		return "", false
	}
	v, ok := s[key]
	return v, ok
}

// Sections returns the section names sorted, with GlobalSection first when
// present.
func (d INI) Sections() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		if name != GlobalSection {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := d[GlobalSection]; ok {
		names = append([]string{GlobalSection}, names...)
	}
	return names
}

// ParseINI parses an INI document.
// Supported syntax:
//   - [section]          - starts a section, names are trimmed
//   - key = value        - split on the first "="
//   - ; comment, # note  - full-line and inline comments
//   - \; and \#          - literal ";" and "#"
//   - \[ at line start    - a key beginning with "[", not a header
//
// Keys before any header go to GlobalSection, which is left out of the
// result when it stays empty. Errors carry the 1-based line number.
func ParseINI(input string) (INI, error) {
	if input == "" {
		return nil, pkerrors.EmptyInput("ini")
	}

	doc := INI{GlobalSection: {}}
	explicitGlobal := false
	current := GlobalSection

	for i, raw := range strings.Split(input, "\n") {
		lineNo := i + 1

		line := strings.TrimSpace(raw)
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		escapedBracket := strings.HasPrefix(line, `\[`)
		if escapedBracket {
			line = line[1:]
		}

		line = stripInlineComment(line)
		if line == "" {
			continue
		}

		if !escapedBracket && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, pkerrors.EmptySectionName(line).WithLine(lineNo)
			}
			if _, ok := doc[name]; !ok {
				doc[name] = map[string]string{}
			}
			if name == GlobalSection {
				explicitGlobal = true
			}
			current = name
			continue
		}

		key, value, err := splitPair(line, "=")
		if err != nil {
			if pErr, ok := pkerrors.AsParseError(err); ok {
				return nil, pErr.WithLine(lineNo)
			}
			return nil, err
		}
		doc[current][key] = value
	}

	if len(doc[GlobalSection]) == 0 && !explicitGlobal {
		delete(doc, GlobalSection)
	}

	return doc, nil
}

// stripInlineComment cuts line at the first unescaped ';' or '#' and
// unescapes "\;" and "\#".
func stripInlineComment(line string) string {
	if !strings.ContainsAny(line, ";#") {
		return line
	}

	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && (line[i+1] == ';' || line[i+1] == '#') {
			sb.WriteByte(line[i+1])
			i++
			continue
		}
		if c == ';' || c == '#' {
			break
		}
		sb.WriteByte(c)
	}
	return strings.TrimSpace(sb.String())
}

// FormatINI writes doc in a form ParseINI reads back to an equal document.
// Global pairs come first without a header, then sections by name.
func FormatINI(doc INI) string {
	var sb strings.Builder
	for _, name := range doc.Sections() {
		if name != GlobalSection || len(doc[name]) == 0 {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("[" + escapeINI(name) + "]\n")
		}
		section := doc[name]
		for _, k := range sortedKeys(section) {
			key := escapeINI(k)
			if strings.HasPrefix(key, "[") {
				key = `\` + key
			}
			sb.WriteString(key)
			sb.WriteString(" = ")
			sb.WriteString(escapeINI(section[k]))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func escapeINI(s string) string {
	return strings.NewReplacer(";", `\;`, "#", `\#`).Replace(s)
}
