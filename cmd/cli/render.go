package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"hiring-orchestrator/internal/agent/orchestrator"
	"hiring-orchestrator/internal/conversation"
)

func printOutput(w io.Writer, out orchestrator.ProcessOutput) {
	resp := out.Response
	fmt.Fprintln(w, resp.Message)
	if resp.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, resp.Summary)
	}
	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(w, "\nPlease clarify:")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	if len(resp.NextActions) > 0 {
		fmt.Fprintln(w, "\nNext actions:")
		for _, a := range resp.NextActions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
}

func printStatus(w io.Writer, s orchestrator.SessionStatus) {
	fmt.Fprintf(w, "session: %s\n", s.SessionID)
	fmt.Fprintf(w, "messages: %d\n", s.ConversationLength)
	if s.Summary != "" {
		fmt.Fprintf(w, "summary: %s\n", s.Summary)
	}
	if len(s.ActiveTasks) > 0 {
		fmt.Fprintf(w, "active tasks: %v\n", s.ActiveTasks)
	}
}

// writeExport encodes the session as YAML to path, or to w when path is "-".
func writeExport(w io.Writer, path string, e conversation.Export) error {
	if path == "" || path == "-" {
		return encodeYAML(w, e)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := encodeYAML(f, e); err != nil {
		return err
	}
	fmt.Fprintf(w, "Session exported to %s\n", path)
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
