// Package trajwriter turns a stream of timestepped, multi-column
// observations into trajectory items, applying a declarative pattern
// whenever a declarative condition set holds, and dispatching the
// assembled items to an external ColumnWriter sink.
package trajwriter
