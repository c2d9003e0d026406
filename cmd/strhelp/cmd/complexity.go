package cmd

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/strhelp"
)

func newComplexityCmd(o *rootOptions) *cobra.Command {
	var flags struct {
		minLength, maxLength, minLower, minUpper, minDigits, minSpecial int
	}

	c := &cobra.Command{
		Use:   "complexity <password>",
		Short: "Check a password against complexity rules",
		Long: `Checks the argument against length and character-class rules.
Rules not given as flags come from the config file. Every violation is
printed, one per line.

Examples:
  strhelp complexity 'Tr0ub4dor&3'
  strhelp complexity --min-length 12 --min-special 2 'p@ss w0rd'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := o.cfg.Complexity.Rules()
			for name, dst := range map[string]*int{
				"min-length":  &rules.MinLength,
				"max-length":  &rules.MaxLength,
				"min-lower":   &rules.MinLower,
				"min-upper":   &rules.MinUpper,
				"min-digits":  &rules.MinDigits,
				"min-special": &rules.MinSpecial,
			} {
				if cmd.Flags().Changed(name) {
					v, err := cmd.Flags().GetInt(name)
					if err != nil {
						return err
					}
					*dst = v
				}
			}

			out := cmd.OutOrStdout()
			err := strhelp.CheckComplexity(args[0], rules)
			if err == nil {
				fmt.Fprintln(out, "ok")
				return nil
			}

			var merr *multierror.Error
			if errors.As(err, &merr) {
				for _, e := range merr.Errors {
					fmt.Fprintln(out, e)
				}
				return fmt.Errorf("%d complexity rules failed: %w", len(merr.Errors), strhelp.ErrComplexity)
			}
			return err
		},
	}

	c.Flags().IntVar(&flags.minLength, "min-length", 0, "minimum length in characters")
	c.Flags().IntVar(&flags.maxLength, "max-length", 0, "maximum length, 0 for none")
	c.Flags().IntVar(&flags.minLower, "min-lower", 0, "minimum lowercase letters")
	c.Flags().IntVar(&flags.minUpper, "min-upper", 0, "minimum uppercase letters")
	c.Flags().IntVar(&flags.minDigits, "min-digits", 0, "minimum digits")
	c.Flags().IntVar(&flags.minSpecial, "min-special", 0, "minimum special characters")
	return c
}
