package command

import (
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/jpnorm"
)

var widthTransformers = map[[2]string]jpnorm.Transformer{
	{"full", "all"}:      jpnorm.Widen,
	{"full", "ascii"}:    jpnorm.WidenASCII,
	{"full", "katakana"}: jpnorm.WidenKatakana,
	{"half", "all"}:      jpnorm.Narrow,
	{"half", "ascii"}:    jpnorm.NarrowASCII,
	{"half", "katakana"}: jpnorm.NarrowKatakana,
}

type widthOptions struct {
	To   *choiceFlag
	Only *choiceFlag
}

func newWidth() *cobra.Command {
	opts := &widthOptions{
		To:   newChoiceFlag("full", "full", "half"),
		Only: newChoiceFlag("all", "all", "ascii", "katakana"),
	}
	cmd := &cobra.Command{
		Use:   "width [--to full|half] [--only all|ascii|katakana] [<text> ...]",
		Short: "Converts text between half-width and full-width forms.",
		Long: "Converts text between half-width and full-width forms.\n\n" +
			"With --only ascii the space is left alone; otherwise it maps to and from the\n" +
			"ideographic space.",
		Example: `jpnorm width ｶﾞｷﾞabc
jpnorm width --to half --only katakana ガギａｂｃ`,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := widthTransformers[[2]string{opts.To.String(), opts.Only.String()}]
			return eachInput(cmd, args, func(text string) error {
				return writeLine(cmd.OutOrStdout(), t.String(text))
			})
		},
	}
	cmd.Flags().Var(opts.To, "to", "target form")
	cmd.Flags().Var(opts.Only, "only", "restrict the conversion to one class of characters")
	return cmd
}
