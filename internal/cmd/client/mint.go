package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leynos/crockford/pkg/cuuid"
)

// NewMintCommand mints identifiers locally, one Crockford string per line.
func NewMintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Mint identifiers locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			ordered, _ := cmd.Flags().GetBool("ordered")
			if count < 1 {
				return fmt.Errorf("--count must be >= 1")
			}

			gen := cuuid.NewGenerator()
			for i := 0; i < count; i++ {
				var (
					id  cuuid.UUID
					err error
				)
				if ordered {
					id, err = gen.Next()
				} else {
					id, err = cuuid.New()
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id.String())
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "How many identifiers to mint")
	cmd.Flags().Bool("ordered", false, "Mint time-ordered (version 7) identifiers")
	return cmd
}
