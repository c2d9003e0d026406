package cmd

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/strhelp"
	"github.com/Lzww0608/strhelp/internal/logging"
)

func newValidateCmd() *cobra.Command {
	var bin bool

	c := &cobra.Command{
		Use:   "validate <uuid>...",
		Short: "Check UUID strings",
		Long: `Reports whether each argument is a canonical UUID of version 1 to 5
with the RFC 4122 variant. With --bin the 16-byte form is printed as hex.

Examples:
  strhelp validate 6ba7b810-9dad-11d1-80b4-00c04fd430c8
  strhelp validate --bin 550e8400-e29b-41d4-a716-446655440000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.L(cmd.Context())
			out := cmd.OutOrStdout()

			invalid := 0
			for _, s := range args {
				if !strhelp.IsValidUUID(s) {
					invalid++
					log.Debug("rejected uuid", slog.String("input", s), logging.ErrAttr(strhelp.Validate(s)))
					fmt.Fprintf(out, "%s\tinvalid\n", s)
					continue
				}
				if !bin {
					fmt.Fprintf(out, "%s\tvalid\n", s)
					continue
				}
				b, err := strhelp.UUIDToBin(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\tvalid\t%s\n", s, hex.EncodeToString(b))
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d values are not valid UUIDs", invalid, len(args))
			}
			return nil
		},
	}

	c.Flags().BoolVar(&bin, "bin", false, "print the binary form as hex")
	return c
}
