package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

// NewLookupCommand queries a running minting server's journal.
func NewLookupCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id>",
		Short: "Look up an identifier in a running server's mint journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := baseURL() + "/v1/ids/lookup?id=" + url.QueryEscape(args[0])
			resp, err := http.Get(u)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("lookup failed: %s: %s", resp.Status, body)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return nil
		},
	}
}
