package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"hiring-orchestrator/pkg/gcalendar"
)

const oauthState = "state-token"

// newCalendarAuthCmd runs the one-time OAuth flow for desktop credentials and
// stores token.json next to the credentials file.
func newCalendarAuthCmd() *cobra.Command {
	var (
		credsPath string
		tokenPath string
	)

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save token.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}

			cfg, err := gcalendar.OAuthConfigFromJSON(data)
			if err != nil {
				return fmt.Errorf("parse credentials: %w (expected an OAuth Desktop App credentials file)", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Open this URL in a browser and sign in with your Google account:")
			fmt.Fprintln(w)
			fmt.Fprintln(w, cfg.AuthCodeURL(oauthState, oauth2.AccessTypeOffline))
			fmt.Fprintln(w)
			fmt.Fprint(w, "Paste the authorization code here: ")

			code, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				return errors.New("no authorization code provided")
			}

			tok, err := cfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			if tokenPath == "" {
				tokenPath = filepath.Join(filepath.Dir(credsPath), gcalendar.DefaultTokenFile)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(w, "\nToken saved to %s\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "", "where to save the token (default: token.json next to the credentials)")
	return cmd
}
