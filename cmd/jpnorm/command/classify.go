package command

import (
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/jpnorm"
)

func newClassify() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [<text> ...]",
		Short: "Prints the script, form and character set of each text.",
		Example: `jpnorm classify 京都 ｶﾀｶﾅカタカナ
echo ひらがな | jpnorm classify`,
		DisableFlagsInUseLine: true,
		RunE:                  commandClassify,
	}
}

func commandClassify(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Text", "Chars", "Script", "Form", "Charset")

	err := eachInput(cmd, args, func(text string) error {
		script := jpnorm.ClassifyScript(text)
		form := jpnorm.ClassifyForm(text)
		charset := jpnorm.ClassifyCharacterSet(text)
		slog.Debug("classified", "text", text, "script", script, "form", form, "charset", charset)
		return table.Append(text, strconv.Itoa(jpnorm.CodepointCount(text)), script.String(), form.String(), charset.String())
	})
	if err != nil {
		return err
	}
	return table.Render()
}
