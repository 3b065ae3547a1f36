package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/squirrel-docs/internal/app"
	"github.com/atomicstack/squirrel-docs/internal/config"
	"github.com/atomicstack/squirrel-docs/internal/format/table"
	"github.com/atomicstack/squirrel-docs/internal/logging"
	"github.com/atomicstack/squirrel-docs/internal/logging/events"
	"github.com/atomicstack/squirrel-docs/internal/ui/state"
	"github.com/atomicstack/squirrel-docs/internal/ui/tree"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := 1
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = exitErr.code
		}
		if code == 2 {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	var runtimeCfg config.Config
	root := &cobra.Command{
		Use:   "squirrel-docs",
		Short: "Browse the Squirrel documentation navigation",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			if err := config.Validate(cfg); err != nil {
				return &exitError{code: 2, err: err}
			}
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			traceStartup(cfg)
			runtimeCfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Run(cmd.Context(), runtimeCfg.App); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "tree",
		Short: "Print the navigation tree as it would render at --path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTree(cmd.OutOrStdout(), runtimeCfg.App)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Load and validate the navigation, reporting every problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateNavigation(cmd.OutOrStdout(), runtimeCfg.App.NavFile); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	})
	return root
}

func printTree(w io.Writer, cfg app.Config) error {
	model, err := app.LoadModel(cfg.NavFile)
	if err != nil {
		return fmt.Errorf("navigation model: %w", err)
	}
	exp := state.NewExpansion(cfg.Policy())
	if trail := tree.ActiveTrail(model, cfg.CurrentPath); trail != nil {
		exp = tree.Reveal(exp, trail)
	}
	_, err = io.WriteString(w, tree.Text(tree.Render(model, exp, cfg.CurrentPath)))
	return err
}

// validateNavigation prints a per-section summary and any targets listed
// more than once. Duplicates are warnings, not errors.
func validateNavigation(w io.Writer, navFile string) error {
	model, err := app.LoadModel(navFile)
	if err != nil {
		return err
	}
	rows := [][]string{{"SECTION", "GROUPS", "LEAVES"}}
	groups := make(map[string]int)
	leaves := make(map[string]int)
	for _, p := range model.Groups() {
		groups[p.Section()]++
	}
	for _, ref := range model.Leaves() {
		leaves[ref.Path.Section()]++
	}
	for _, sec := range model.Sections() {
		rows = append(rows, []string{sec.Title, strconv.Itoa(groups[sec.Title]), strconv.Itoa(leaves[sec.Title])})
	}
	rows = append(rows, []string{"total", strconv.Itoa(len(model.Groups())), strconv.Itoa(len(model.Leaves()))})
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight}) {
		fmt.Fprintln(w, line)
	}

	dups := model.Duplicates()
	targets := make([]string, 0, len(dups))
	for target := range dups {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	for _, target := range targets {
		fmt.Fprintf(w, "warning: %s is listed %d times:\n", target, len(dups[target]))
		for _, p := range dups[target] {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	return nil
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
