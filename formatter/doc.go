// Package formatter renders log entries into a buffer.Buffer.
//
// TextFormatter writes every fragment of a line (brackets, index,
// symbol, timer reading, message) as a separate append, so a line is
// never assembled in a temporary string; the bounded buffer decides
// when bytes reach the sinks.
//
// Styling follows the flags. Each colored segment is preceded by a
// clearing escape and the level color, plus bold for error, success
// and critical, and is followed by a clearing escape. With both color
// and bold off no escapes are written at all.
package formatter
