package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/strhelp"
)

func newCaseCmd(o *rootOptions) *cobra.Command {
	var (
		to        string
		encName   string
		lowercase bool
	)

	c := &cobra.Command{
		Use:   "case <text>...",
		Short: "Convert the case of text",
		Long: `Converts the arguments, joined by spaces, to another case.

lower, upper and title honour --encoding. camel, kebab and snake keep only
ASCII letters and digits; kebab keeps case and snake lowercases unless
--lowercase says otherwise.

Examples:
  strhelp case --to title "hello wORLD"
  strhelp case --to kebab --lowercase "Crème Brûlée"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if !cmd.Flags().Changed("encoding") {
				encName = o.cfg.Case.Encoding
			}

			var slugOpts []strhelp.SlugOption
			if cmd.Flags().Changed("lowercase") {
				slugOpts = append(slugOpts, strhelp.WithLowercase(lowercase))
			}

			var (
				out string
				err error
			)
			switch strings.ToLower(to) {
			case "lower":
				out, err = strhelp.ConvertCase(text, strhelp.CaseLower, encName)
			case "upper":
				out, err = strhelp.ConvertCase(text, strhelp.CaseUpper, encName)
			case "title":
				out, err = strhelp.ConvertCase(text, strhelp.CaseTitle, encName)
			case "camel":
				out = strhelp.CamelCase(text)
			case "kebab":
				out = strhelp.KebabCase(text, slugOpts...)
			case "snake":
				out = strhelp.SnakeCase(text, slugOpts...)
			default:
				return fmt.Errorf("%w: case %q", strhelp.ErrInvalidArgument, to)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().StringVar(&to, "to", "lower", "lower, upper, title, camel, kebab or snake")
	c.Flags().StringVar(&encName, "encoding", "", "IANA encoding of the text (default from config)")
	c.Flags().BoolVar(&lowercase, "lowercase", false, "lowercase kebab/snake output")
	return c
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check has|starts|ends <text> <needle>",
		Short: "Test a string predicate",
		Long: `Prints true or false.

Examples:
  strhelp check has "hello world" "o w"
  strhelp check ends file.tar.gz .gz`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"has", "starts", "ends"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, needle := args[1], args[2]

			var ok bool
			switch args[0] {
			case "has":
				ok = strhelp.Has(s, needle)
			case "starts":
				ok = strhelp.StartsWith(s, needle)
			case "ends":
				ok = strhelp.EndsWith(s, needle)
			default:
				return fmt.Errorf("%w: predicate %q", strhelp.ErrInvalidArgument, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return nil
		},
	}
}
