package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/router"
	"crm-intent-router/internal/router/rules"
	"crm-intent-router/pkg/log"
)

type routeFlags struct {
	stdin    bool
	rules    string
	noGuards bool
	explain  bool
	verbose  bool
}

// routeLine is one line of output: a tool request or a routing error.
type routeLine struct {
	Text   string          `json:"text,omitempty"`
	Tool   model.Tool      `json:"tool,omitempty"`
	Args   model.Args      `json:"args,omitempty"`
	Error  string          `json:"error,omitempty"`
	Kind   model.ErrorKind `json:"kind,omitempty"`
	Field  string          `json:"field,omitempty"`
	Reason string          `json:"reason,omitempty"`
}

func newRootCmd() *cobra.Command {
	var f routeFlags

	cmd := &cobra.Command{
		Use:   "route [utterance...]",
		Short: "Route CRM utterances to a tool and print the JSON request",
		Long: `Route classifies each utterance into one CRM tool and extracts its arguments.
One JSON object is printed per utterance: {"tool":...,"args":{...}} on success
or {"error":...,"kind":...} when the utterance is rejected.`,
		Example: `  route "Show me open pipe for AMER ACC"
  cat utterances.txt | route --stdin
  route --explain "Who don't have Data Cloud in AMER ACC"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !f.stdin && len(args) == 0 {
				return errors.New("provide at least one utterance or --stdin")
			}
			return runRoute(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), f, args)
		},
	}

	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "read one utterance per line from stdin")
	cmd.Flags().StringVar(&f.rules, "rules", "", "alternate rule set file (YAML)")
	cmd.Flags().BoolVar(&f.noGuards, "no-guards", false, "disable domain and syntax guards")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "print the stage-by-stage trace instead of the request")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log routing decisions to stderr")

	return cmd
}

func runRoute(ctx context.Context, in io.Reader, out, errOut io.Writer, f routeFlags, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.NewNop()
	if f.verbose {
		logger = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, Output: errOut})
	}

	set, err := loadRules(f.rules)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	engine, err := router.New(logger, router.Config{Rules: set, DisableGuards: f.noGuards})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	emit := func(text string) error {
		if f.explain {
			return enc.Encode(engine.Analyze(ctx, text))
		}
		return enc.Encode(toLine(ctx, engine, text, f.stdin || len(args) > 1))
	}

	for _, text := range args {
		if err := emit(text); err != nil {
			return err
		}
	}

	if !f.stdin {
		return nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := emit(text); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// maxLineBytes caps a single stdin utterance.
const maxLineBytes = 16 << 20

func toLine(ctx context.Context, engine router.Router, text string, echo bool) routeLine {
	var line routeLine
	if echo {
		line.Text = text
	}

	req, err := engine.Route(ctx, text)
	if err != nil {
		line.Error = err.Error()
		if re, ok := model.AsRoutingError(err); ok {
			line.Kind = re.Kind
			line.Field = re.Field
			line.Reason = re.Reason
		}
		return line
	}

	line.Tool = req.Tool
	line.Args = req.Args
	return line
}

func loadRules(path string) (*rules.Set, error) {
	if path == "" {
		return rules.Default()
	}
	return rules.Load(path)
}
