package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/strhelp"
	"github.com/Lzww0608/strhelp/internal/logging"
)

func checkCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", strhelp.ErrInvalidArgument, n)
	}
	return nil
}

func newUUIDCmd() *cobra.Command {
	var (
		version int
		count   int
		format  string
	)

	c := &cobra.Command{
		Use:   "uuid",
		Short: "Generate UUIDs",
		Long: `Generates time-ordered UUIDv7 values, or random UUIDv4 values.

Examples:
  strhelp uuid
  strhelp uuid -n 5
  strhelp uuid --version 4 --format base64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}

			var gen func() (strhelp.UUID, error)
			switch version {
			case 4:
				gen = strhelp.NewV4
			case 7:
				gen = strhelp.NewV7
			default:
				return fmt.Errorf("%w: uuid version %d, want 4 or 7", strhelp.ErrInvalidArgument, version)
			}

			var render func(strhelp.UUID) string
			switch format {
			case "canonical":
				render = strhelp.UUID.String
			case "hex":
				render = strhelp.UUID.EncodeToHex
			case "base64":
				render = strhelp.UUID.EncodeToBase64
			case "urn":
				render = func(u strhelp.UUID) string { return "urn:uuid:" + u.String() }
			default:
				return fmt.Errorf("%w: format %q", strhelp.ErrInvalidArgument, format)
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				u, err := gen()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, render(u))
			}

			logging.L(cmd.Context()).Debug("generated uuids",
				slog.Int("version", version),
				slog.Int("count", count),
			)
			return nil
		},
	}

	c.Flags().IntVar(&version, "version", 7, "UUID version (4 or 7)")
	c.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs")
	c.Flags().StringVarP(&format, "format", "f", "canonical", "canonical, hex, base64 or urn")
	return c
}

func newULIDCmd() *cobra.Command {
	var count int

	c := &cobra.Command{
		Use:   "ulid",
		Short: "Generate monotonic ULIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				id, err := strhelp.NewULID()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&count, "count", "n", 1, "number of ULIDs")
	return c
}

func newUIDCmd(o *rootOptions) *cobra.Command {
	var length int

	c := &cobra.Command{
		Use:   "uid",
		Short: "Generate a secure random hex string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				length = o.cfg.UID.Length
			}
			s, err := strhelp.UID(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	c.Flags().IntVarP(&length, "length", "l", 0, "number of hex characters (default from config)")
	return c
}

func newRandomCmd(o *rootOptions) *cobra.Command {
	var (
		length  int
		charset string
		count   int
	)

	c := &cobra.Command{
		Use:   "random",
		Short: "Generate random strings from a charset",
		Long: `Generates random strings. Charsets: all, nonzero, numeric, alpha,
alpha_lower, alpha_upper, alphanumeric, alphanumeric_lower, alphanumeric_upper.

Examples:
  strhelp random
  strhelp random --length 6 --type numeric`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			if !cmd.Flags().Changed("length") {
				length = o.cfg.Random.Length
			}
			cs := o.cfg.Random.Charset
			if cmd.Flags().Changed("type") {
				var err error
				if cs, err = strhelp.ParseCharset(charset); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				s, err := strhelp.Random(length, cs)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}

			logging.L(cmd.Context()).Debug("generated random strings",
				slog.String("charset", cs.String()),
				slog.Int("length", length),
			)
			return nil
		},
	}

	c.Flags().IntVarP(&length, "length", "l", 0, "string length (default from config)")
	c.Flags().StringVarP(&charset, "type", "t", "", "charset name (default from config)")
	c.Flags().IntVarP(&count, "count", "n", 1, "number of strings")
	return c
}
