package parse

import (
	"math"
	"regexp"
	"strings"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// SizeMode selects the multiplier between successive size units.
type SizeMode int

const (
	// Binary scales units by 1024 (1KB = 1024B).
	Binary SizeMode = iota
	// Decimal scales units by 1000 (1KB = 1000B).
	Decimal
)

// String returns the mode name.
func (m SizeMode) String() string {
	if m == Decimal {
		return "decimal"
	}
	return "binary"
}

// Base returns the multiplier between successive units.
func (m SizeMode) Base() float64 {
	if m == Decimal {
		return 1000
	}
	return 1024
}

// sizeUnits is ordered by exponent.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

var dataSizePattern = regexp.MustCompile(`^([-+]?[0-9.]+)\s*([A-Za-z]+)$`)

// ParseDataSize converts a size such as "1.5GB" or "512 kb" into bytes.
// The whole input must be a single <number><unit> token; the unit is one of
// B, KB, MB, GB, TB, PB, EB, ZB, YB in any case. The result is floored.
func ParseDataSize(input string, mode SizeMode) (int64, error) {
	if input == "" {
		return 0, pkerrors.EmptyInput("data size")
	}

	trimmed := strings.TrimSpace(input)
	m := dataSizePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, pkerrors.InvalidFormat(input, "<number><unit>, e.g. \"1.5GB\"")
	}

	value, err := parseNonNegative(m[1])
	if err != nil {
		return 0, err
	}

	multiplier, ok := unitMultiplier(strings.ToUpper(m[2]), mode.Base())
	if !ok {
		return 0, pkerrors.UnrecognizedUnit(m[2], sizeUnits)
	}

	bytes := math.Floor(value * multiplier)
	if bytes >= math.MaxInt64 {
		return 0, pkerrors.ValueOverflow(input)
	}
	return int64(bytes), nil
}

func unitMultiplier(unit string, base float64) (float64, bool) {
	for exp, u := range sizeUnits {
		if u == unit {
			return math.Pow(base, float64(exp)), true
		}
	}
	return 0, false
}
