package command

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/jpnorm"
)

// eachInput calls fn for every argument, or for every line of the command's
// input when there are no arguments. A UTF-8 byte order mark at the start of
// the input is dropped.
func eachInput(cmd *cobra.Command, args []string, fn func(text string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = jpnorm.StripUTF8BOM(line)
			first = false
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// writeLine writes s and a newline to w.
func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
