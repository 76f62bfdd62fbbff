package parse

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// durationToken matches one <number><unit> token. The number part is any run
// of digits, dots, and a sign; parseNonNegative validates it.
var durationToken = regexp.MustCompile(`([-+]?[0-9.]+)\s*([A-Za-z]+)`)

// durationUnits maps lower-cased unit names to milliseconds.
var durationUnits = map[string]float64{
	"ms": 1, "msec": 1, "msecs": 1, "millisecond": 1, "milliseconds": 1,
	"s": 1000, "sec": 1000, "secs": 1000, "second": 1000, "seconds": 1000,
	"m": 60 * 1000, "min": 60 * 1000, "mins": 60 * 1000, "minute": 60 * 1000, "minutes": 60 * 1000,
	"h": 3600 * 1000, "hr": 3600 * 1000, "hrs": 3600 * 1000, "hour": 3600 * 1000, "hours": 3600 * 1000,
	"d": 86400 * 1000, "day": 86400 * 1000, "days": 86400 * 1000,
	"w": 7 * 86400 * 1000, "wk": 7 * 86400 * 1000, "wks": 7 * 86400 * 1000, "week": 7 * 86400 * 1000, "weeks": 7 * 86400 * 1000,
}

// DurationUnits returns the recognized duration unit names, sorted.
func DurationUnits() []string {
	units := make([]string, 0, len(durationUnits))
	for u := range durationUnits {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}

// ParseDuration converts a human-readable duration such as "1h 30m 15s" into
// whole milliseconds.
// Supported formats:
//   - Single token: "500ms", "2s", "1.5h"
//   - Several tokens, any order: "1d 2h 30m", "30m1h"
//   - Long unit names, any case: "2 Hours 5 minutes"
//
// Text between tokens is ignored. The total is floored.
func ParseDuration(input string) (int64, error) {
	if input == "" {
		return 0, pkerrors.EmptyInput("duration")
	}

	var total float64
	matched := false

	for cursor := 0; cursor < len(input); {
		loc := durationToken.FindStringSubmatchIndex(input[cursor:])
		if loc == nil {
			break
		}
		numPart := input[cursor+loc[2] : cursor+loc[3]]
		unitPart := input[cursor+loc[4] : cursor+loc[5]]
		cursor += loc[1]

		value, err := parseNonNegative(numPart)
		if err != nil {
			return 0, err
		}

		weight, ok := durationUnits[strings.ToLower(unitPart)]
		if !ok {
			return 0, pkerrors.UnrecognizedUnit(unitPart, DurationUnits())
		}

		total += value * weight
		matched = true
	}

	if !matched {
		return 0, pkerrors.InvalidFormat(input, "one or more <number><unit> tokens, e.g. \"1h 30m\"")
	}

	total = math.Floor(total)
	if total >= math.MaxInt64 {
		return 0, pkerrors.ValueOverflow(input)
	}
	return int64(total), nil
}

// ParseDurationValue is ParseDuration returning a time.Duration.
func ParseDurationValue(input string) (time.Duration, error) {
	ms, err := ParseDuration(input)
	if err != nil {
		return 0, err
	}
	if ms > math.MaxInt64/int64(time.Millisecond) {
		return 0, pkerrors.ValueOverflow(input)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// parseNonNegative parses a numeric token that must be a finite value >= 0.
func parseNonNegative(token string) (float64, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, pkerrors.InvalidNumber(token, err)
	}
	if value < 0 {
		return 0, pkerrors.NegativeValue(token)
	}
	return value, nil
}
