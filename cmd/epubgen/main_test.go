package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/luminpress/epubgen"
)

func TestReadCLIOptions_Defaults(t *testing.T) {
	cmd := newRootCmd()
	opts, err := readCLIOptions(cmd, []string{"./books/sample.toml"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}

	if opts.OutputPath != "./books/sample.epub" {
		t.Fatalf("OutputPath = %q, want %q", opts.OutputPath, "./books/sample.epub")
	}
	if opts.MaxCoverWidth != epubgen.DefaultMaxCoverWidth {
		t.Fatalf("MaxCoverWidth = %d, want %d", opts.MaxCoverWidth, epubgen.DefaultMaxCoverWidth)
	}
	if opts.Logger == nil {
		t.Fatal("Logger is nil, want non-nil")
	}
	if !opts.Logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("Logger should be enabled at INFO level by default")
	}
}

func TestReadCLIOptions_CustomFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{
		"--output", "./out/custom.epub",
		"--max-cover-width", "800",
		"--verbose",
	}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	opts, err := readCLIOptions(cmd, []string{"./books/sample.toml"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}

	if opts.OutputPath != "./out/custom.epub" {
		t.Fatalf("OutputPath = %q", opts.OutputPath)
	}
	if opts.MaxCoverWidth != 800 {
		t.Fatalf("MaxCoverWidth = %d", opts.MaxCoverWidth)
	}
	// --verbose overrides log-level to debug
	if !opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("Logger should be enabled at DEBUG level when --verbose is set")
	}
}

func TestReadCLIOptions_InvalidLogLevel(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--log-level", "trace"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	_, err := readCLIOptions(cmd, []string{"./books/sample.toml"})
	if err == nil || !strings.Contains(err.Error(), "--log-level") {
		t.Fatalf("expected log-level validation error, got %v", err)
	}
}

func TestReadCLIOptions_InvalidLogFormat(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--log-format", "yaml"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	_, err := readCLIOptions(cmd, []string{"./books/sample.toml"})
	if err == nil || !strings.Contains(err.Error(), "--log-format") {
		t.Fatalf("expected log-format validation error, got %v", err)
	}
}

func TestBuildLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := buildLogger(&buf, "info", "JSON")
	logger.Info("test message")
	output := buf.String()
	if len(output) == 0 || output[0] != '{' {
		t.Fatalf("expected JSON output for format 'JSON', got: %s", output)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	if got := defaultOutputPath("./books/sample.toml"); got != "./books/sample.epub" {
		t.Fatalf("defaultOutputPath() = %q", got)
	}
}
