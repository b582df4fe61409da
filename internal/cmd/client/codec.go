package client

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leynos/crockford/pkg/cuuid"
)

// NewEncodeCommand converts an RFC 4122 or hex identifier to Crockford form.
func NewEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <uuid|hex>",
		Short: "Encode a standard UUID or 32 hex digits as Crockford Base32",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fu, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cuuid.FromUUID(fu).String())
			return nil
		},
	}
}

// NewDecodeCommand normalizes a Crockford string and prints all three views.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <id>",
		Short: "Decode a Crockford Base32 identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cuuid.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "canonical:", id.String())
			fmt.Fprintln(out, "uuid:     ", id.UUID().String())
			fmt.Fprintln(out, "hex:      ", hex.EncodeToString(id.Bytes()))
			return nil
		},
	}
}
