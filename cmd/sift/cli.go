package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/sift/internal/analyze"
	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/errors"
	"github.com/hpungsan/sift/internal/ops"
	"github.com/hpungsan/sift/internal/store"
	"github.com/hpungsan/sift/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st *store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "sift",
		Usage:   "String analysis service",
		Version: Version,
		Commands: []*cli.Command{
			serveCmd(st, cfg),
			analyzeCmd(cfg),
			hashCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// serveCmd creates the serve command.
func serveCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Usage: "Address to bind to (overrides config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.Bind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.Port
			if c.IsSet("port") {
				port = c.Int("port")
			}

			srv := web.NewServer(st, cfg, Version, bind, port)
			fmt.Fprintf(os.Stderr, "sift %s listening on %s\n", Version, srv.Addr)
			return web.Run(srv)
		},
	}
}

// analyzeCmd creates the analyze command.
func analyzeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a string without storing it (positional value or stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			value, err := readValue(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Analyze(cfg, ops.AnalyzeInput{Value: &value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// hashCmd creates the hash command.
func hashCmd() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the SHA-256 content digest of a string (positional value or stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			value, err := readValue(c)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(map[string]string{
				"sha256_hash": analyze.Hash(value),
			})
		},
	}
}

// Helper functions

// readValue takes the value from the first positional argument, falling back
// to stdin when piped. Positional input wins if both are present.
func readValue(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	if stdinHasData() {
		return readStdin()
	}
	return "", errors.NewInvalidRequest("value must be given as an argument or piped via stdin")
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SiftError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
