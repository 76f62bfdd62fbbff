// Package parse turns delimited and structured text into typed values.
//
// Every parser is a pure function: it validates its input and returns either
// a complete result or a *errors.ParseError naming the offending fragment.
// No parser retains state between calls, so all of them are safe for
// concurrent use.
package parse
