package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hiring-orchestrator/internal/agent/orchestrator"
)

const (
	chatPrompt = "You: "
	chatHelp   = `Type a hiring request, for example:
  Create a job description for a senior Go engineer
  Screen the resume in cv.txt for the job we just created
  Schedule an interview with the candidate next Monday

Commands:
  help           show this help
  status         show session status
  export [file]  export the conversation as YAML
  clear          start over with a fresh session
  exit, quit     leave`
)

func newChatCmd(build builder) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive hiring session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := build(cmd.Context())
			if err != nil {
				return err
			}
			return runChat(cmd, rt.uc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runChat(cmd *cobra.Command, uc orchestrator.UseCase, in io.Reader, w io.Writer) error {
	sessionID := uc.StartSession()
	fmt.Fprintf(w, "Hiring assistant ready (session %s). Type 'help' for examples.\n", sessionID)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, chatPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			fmt.Fprintln(w, "Goodbye!")
			return nil
		case "help":
			fmt.Fprintln(w, chatHelp)
			continue
		case "status":
			printStatus(w, uc.Status(sessionID))
			continue
		case "clear":
			uc.ClearSession(sessionID)
			sessionID = uc.StartSession()
			fmt.Fprintf(w, "Session cleared. New session %s\n", sessionID)
			continue
		case "export":
			path := "-"
			if len(fields) > 1 {
				path = fields[1]
			}
			export, ok := uc.Export(sessionID)
			if !ok {
				fmt.Fprintln(w, "Nothing to export yet.")
				continue
			}
			if err := writeExport(w, path, export); err != nil {
				fmt.Fprintf(w, "Export failed: %v\n", err)
			}
			continue
		}

		out, err := uc.Process(cmd.Context(), orchestrator.ProcessInput{SessionID: sessionID, Message: line})
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		fmt.Fprint(w, "Assistant: ")
		printOutput(w, out)
	}
}
