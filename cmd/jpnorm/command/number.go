package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/jpnorm"
)

type numberOptions struct {
	KeepLeadingZeros bool
	ToKanji          bool
	Strict           bool
}

func newNumber() *cobra.Command {
	opts := &numberOptions{}
	cmd := &cobra.Command{
		Use:   "number [--keep-leading-zeros] [--to-kanji] [--strict] [<numeral> ...]",
		Short: "Converts kanji numerals to arabic numerals and back.",
		Long: "Converts kanji numerals to arabic numerals and back.\n\n" +
			"For each numeral the normalized kanji spelling and the arabic value are\n" +
			"printed, separated by a tab. A numeral that cannot be read is reported as\n" +
			"\"<numeral>\\terror: <reason>\" and, unless --strict is set, does not fail\n" +
			"the command.",
		Example: `jpnorm number 五百三十四億二千五十三万五百三十二
jpnorm number --keep-leading-zeros ０１２
jpnorm number --to-kanji 18446744073709551615`,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			err := eachInput(cmd, args, func(text string) error {
				line, err := convertNumber(text, opts)
				if err != nil {
					failed++
					slog.Warn("cannot convert numeral", "input", text, "error", err)
					line = fmt.Sprintf("%s\terror: %v", text, err)
				}
				return writeLine(cmd.OutOrStdout(), line)
			})
			if err != nil {
				return err
			}
			if opts.Strict && failed > 0 {
				return fmt.Errorf("%d numerals could not be converted", failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.KeepLeadingZeros, "keep-leading-zeros", false, "keep leading zero digits in the arabic output")
	cmd.Flags().BoolVar(&opts.ToKanji, "to-kanji", false, "read decimal numbers and spell them in kanji")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "exit with an error if any numeral cannot be converted")
	return cmd
}

func convertNumber(text string, opts *numberOptions) (string, error) {
	if opts.ToKanji {
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return "", err
		}
		return jpnorm.ToKanji(n) + "\t" + strconv.FormatUint(n, 10), nil
	}
	kanji, arabic, err := jpnorm.KanjiToArabic(text, opts.KeepLeadingZeros)
	if err != nil {
		return "", err
	}
	return kanji + "\t" + arabic, nil
}
