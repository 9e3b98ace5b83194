package command

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/scalecode-solutions/jpnorm"
)

type kanaOptions struct {
	To             *choiceFlag
	ComposeVoicing bool
}

func newKana() *cobra.Command {
	opts := &kanaOptions{
		To: newChoiceFlag("katakana", "katakana", "hiragana", "none"),
	}
	cmd := &cobra.Command{
		Use:   "kana [--to katakana|hiragana|none] [--compose-voicing] [<text> ...]",
		Short: "Converts between hiragana and katakana.",
		Example: `jpnorm kana ひらがな
jpnorm kana --to hiragana --compose-voicing カタカナ う゛`,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var chain []transform.Transformer
			if opts.ComposeVoicing {
				chain = append(chain, jpnorm.ComposeVoicedSoundMarks)
			}
			switch opts.To.String() {
			case "katakana":
				chain = append(chain, jpnorm.ToKatakana)
			case "hiragana":
				chain = append(chain, jpnorm.ToHiragana)
			}
			if len(chain) == 0 {
				chain = append(chain, transform.Nop)
			}
			return eachInput(cmd, args, func(text string) error {
				out, _, err := transform.String(transform.Chain(chain...), text)
				if err != nil {
					return err
				}
				return writeLine(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().Var(opts.To, "to", "target script")
	cmd.Flags().BoolVar(&opts.ComposeVoicing, "compose-voicing", false, "merge kana and a following voicing mark first")
	return cmd
}
