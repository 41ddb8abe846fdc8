package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hiring-orchestrator/internal/agent/orchestrator"
)

func newAskCmd(build builder) *cobra.Command {
	var (
		contextKV  map[string]string
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "ask <request>",
		Short: "Run a single request and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := build(cmd.Context())
			if err != nil {
				return err
			}

			in := orchestrator.ProcessInput{Message: strings.Join(args, " ")}
			if len(contextKV) > 0 {
				in.Context = make(map[string]any, len(contextKV))
				for k, v := range contextKV {
					in.Context[k] = v
				}
			}

			out, err := rt.uc.Process(cmd.Context(), in)
			if err != nil {
				return err
			}
			printOutput(cmd.OutOrStdout(), out)

			if exportPath != "" {
				export, ok := rt.uc.Export(out.SessionID)
				if !ok {
					return fmt.Errorf("session %s not found", out.SessionID)
				}
				return writeExport(cmd.OutOrStdout(), exportPath, export)
			}
			return nil
		},
	}

	cmd.Flags().StringToStringVarP(&contextKV, "context", "c", nil, "request context, e.g. --context job_id=abc,resume_path=cv.txt")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the session as YAML to this file (- for stdout)")
	return cmd
}
