package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luminpress/epubgen"
)

// cliOptions holds the resolved command-line configuration.
type cliOptions struct {
	ManifestPath  string
	OutputPath    string
	MaxCoverWidth int
	Logger        *slog.Logger
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epubgen <book.toml>",
		Short: "Build an EPUB3 package from a TOML book manifest",
		Long: `epubgen builds a standards-compliant EPUB3 file from a TOML manifest that
names the book metadata, an optional cover image, and the chapter HTML
files in reading order. Chapter HTML may be malformed; it is repaired
into well-formed XHTML during the build.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readCLIOptions(cmd, args)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: manifest path with .epub extension)")
	cmd.Flags().Int("max-cover-width", epubgen.DefaultMaxCoverWidth, "Downscale covers wider than this many pixels (negative disables)")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "text", "Log format: text, json")
	cmd.Flags().Bool("verbose", false, "Shorthand for --log-level debug")

	return cmd
}

// readCLIOptions resolves flags and positional arguments into cliOptions.
func readCLIOptions(cmd *cobra.Command, args []string) (*cliOptions, error) {
	manifestPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(manifestPath)
	}

	maxCoverWidth, _ := cmd.Flags().GetInt("max-cover-width")

	level, _ := cmd.Flags().GetString("log-level")
	level = strings.ToLower(level)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid --log-level %q: must be debug, info, warn or error", level)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	format, _ := cmd.Flags().GetString("log-format")
	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid --log-format %q: must be text or json", format)
	}

	return &cliOptions{
		ManifestPath:  manifestPath,
		OutputPath:    outputPath,
		MaxCoverWidth: maxCoverWidth,
		Logger:        buildLogger(os.Stderr, level, format),
	}, nil
}

// buildLogger constructs a slog.Logger writing to w with the given level
// and format.
func buildLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// defaultOutputPath derives the output file path from the manifest path by
// swapping the extension for .epub.
func defaultOutputPath(manifestPath string) string {
	return strings.TrimSuffix(manifestPath, filepath.Ext(manifestPath)) + ".epub"
}

func run(opts *cliOptions) error {
	req, err := loadManifest(opts.ManifestPath)
	if err != nil {
		return err
	}
	req.DestinationPath = opts.OutputPath

	opts.Logger.Info("building EPUB",
		"manifest", opts.ManifestPath,
		"output", opts.OutputPath,
		"chapters", len(req.Chapters))

	gen := epubgen.NewGenerator(epubgen.Options{
		MaxCoverWidth: opts.MaxCoverWidth,
		Logger:        opts.Logger,
	})
	path, err := gen.Generate(*req)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	opts.Logger.Info("done", "output", path)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
