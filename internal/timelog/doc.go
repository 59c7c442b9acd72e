// Package timelog encodes and replays the append-only interval log.
//
// The log is ASCII text made of interval records and grouping markers:
//
//	log    := (record | DAY | WEEK)*
//	record := digits "|" digits ","
//	DAY    := "?"
//	WEEK   := "\n"
//
// Records carry start and end timestamps in Unix milliseconds. Markers
// never add or remove time; they only describe how recorded time groups
// into days and weeks. The package performs no I/O of its own: writes go
// through an Appender and Aggregate works on the full log text.
package timelog
