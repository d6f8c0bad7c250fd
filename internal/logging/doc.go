// Package logging builds the slog logger behind the cardpress CLI. Output is
// plain console lines: info messages print bare, other levels carry a label,
// and attributes render as key=value pairs. The caller decides whether labels
// are colored, typically when stderr is a terminal.
package logging
