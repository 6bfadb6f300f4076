// Command trajwriter-demo streams synthetic steps through a trajwriter.Writer
// configured from a YAML pattern file, and prints every trajectory the
// in-memory sink receives.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jtomasevic/trajwriter/pkg/memsink"
	"github.com/jtomasevic/trajwriter/pkg/trajwriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "trajwriter-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadDemoConfig()
	if err != nil {
		return err
	}

	switch cfg.LogLevel {
	case "debug":
		trajwriter.Level.Set(slog.LevelDebug)
	case "warn":
		trajwriter.Level.Set(slog.LevelWarn)
	case "error":
		trajwriter.Level.Set(slog.LevelError)
	default:
		trajwriter.Level.Set(slog.LevelInfo)
	}
	log := trajwriter.NewLogger(nil)

	patterns, err := trajwriter.LoadConfigsYAML(cfg.PatternsFile)
	if err != nil {
		return err
	}

	sink := memsink.New(memsink.WithRetention(trajwriter.RequiredRetention(patterns)))
	writer, err := trajwriter.NewWriter(sink, patterns)
	if err != nil {
		return fmt.Errorf("constructing writer: %w", err)
	}
	writer.WithLogger(log)

	for i := 0; i < cfg.NumSteps; i++ {
		step := trajwriter.Step{i, i * 10}
		if err := writer.Append(step); err != nil {
			return fmt.Errorf("append step %d: %w", i, err)
		}
	}

	if err := writer.EndEpisode(cfg.ClearOnEnd, 5*time.Second); err != nil {
		return fmt.Errorf("end episode: %w", err)
	}
	if err := writer.Flush(0, 5*time.Second); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	for i, item := range sink.GetWritten() {
		log.Info("trajectory", "index", i, "table", item.Table, "priority", item.Priority, "columns", item.Columns)
	}
	return nil
}
