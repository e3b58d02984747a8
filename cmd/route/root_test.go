package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeLines(t *testing.T, out string) []routeLine {
	t.Helper()
	var lines []routeLine
	for _, raw := range strings.Split(strings.TrimSpace(out), "\n") {
		var l routeLine
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			t.Fatalf("invalid json line %q: %v", raw, err)
		}
		lines = append(lines, l)
	}
	return lines
}

func TestRouteCmd_Args(t *testing.T) {
	out, err := runCmd(t, "", "Show me open pipe for AMER ACC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := decodeLines(t, out)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Tool != "open_pipe_analyze" || lines[0].Args["ouName"] != "AMER ACC" {
		t.Errorf("unexpected line: %+v", lines[0])
	}
	if lines[0].Text != "" {
		t.Errorf("single utterance must not be echoed")
	}
}

func TestRouteCmd_Stdin(t *testing.T) {
	stdin := "Show me open pipe for AMER ACC\n\nGenerate pipeline for UKI next quarter\n"
	out, err := runCmd(t, stdin, "--stdin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := decodeLines(t, out)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), out)
	}
	if lines[0].Tool != "open_pipe_analyze" || lines[0].Text != "Show me open pipe for AMER ACC" {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Kind != "DOMAIN_REJECTION" || lines[1].Reason != "excluded_action" || lines[1].Error == "" {
		t.Errorf("unexpected second line: %+v", lines[1])
	}
}

func TestRouteCmd_StdinLongLine(t *testing.T) {
	long := "Show me open pipe for AMER ACC " + strings.Repeat("x ", 40000)
	out, err := runCmd(t, long+"\nShow me open pipe for UKI\n", "--stdin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := decodeLines(t, out)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Tool != "open_pipe_analyze" || lines[0].Args["ouName"] != "AMER ACC" {
		t.Errorf("unexpected first line: %+v", lines[0].Args)
	}
	if lines[1].Args["ouName"] != "UKI" {
		t.Errorf("unexpected second line: %+v", lines[1])
	}
}

func TestRouteCmd_NoGuards(t *testing.T) {
	out, err := runCmd(t, "", "--no-guards", "Cross-sell opportunities for AMER ACC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l := decodeLines(t, out)[0]; l.Tool != "future_pipeline" {
		t.Errorf("expected future_pipeline with guards off, got %+v", l)
	}
}

func TestRouteCmd_Explain(t *testing.T) {
	out, err := runCmd(t, "", "--explain", "KPI analysis for AMER ACC this quarter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var trace map[string]any
	if err := json.Unmarshal([]byte(out), &trace); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := trace["classification"]; !ok {
		t.Errorf("expected classification in trace: %v", trace)
	}
}

func TestRouteCmd_Errors(t *testing.T) {
	if _, err := runCmd(t, ""); err == nil {
		t.Errorf("expected error without utterances")
	}
	if _, err := runCmd(t, "", "--rules", "/does/not/exist.yaml", "x"); err == nil {
		t.Errorf("expected error for missing rule file")
	}
}
