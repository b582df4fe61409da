package client

import (
	"github.com/spf13/cobra"
)

// BaseURLFunc supplies the HTTP base URL of a running minting server.
type BaseURLFunc func() string

// Register adds the client command set to root.
func Register(root *cobra.Command, baseURL BaseURLFunc) {
	root.AddCommand(NewMintCommand())
	root.AddCommand(NewEncodeCommand())
	root.AddCommand(NewDecodeCommand())
	root.AddCommand(NewLookupCommand(baseURL))
}
