package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/khanglvm/toolbelt/internal/search"
	"github.com/khanglvm/toolbelt/internal/transform"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the 'run' command for the local text tools.
func NewRunCmd(g *Globals) *cobra.Command {
	var file string
	var opts map[string]string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run <tool> [input]",
		Short: "Run a text tool locally",
		Long: fmt.Sprintf(`Run one of the local text tools on the given input.

The tool is a processor id or a catalog title. Input comes from the argument,
from --file, or from stdin. Tool options are passed as --opt key=value.

Available tools: %s`, strings.Join(transform.IDs(), ", ")),
		Example: `  toolbelt run json-formatter '{"a":1}'
  toolbelt run json-formatter --file data.json --opt mode=minify
  toolbelt run number-base-converter 0xff
  toolbelt run "Unix Timestamp Converter" now --opt tz=Europe/Berlin
  cat README.md | toolbelt run markdown-to-html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args[1:], file)
			if err != nil {
				return err
			}
			return runTool(cmd, g, args[0], input, opts, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from a file")
	cmd.Flags().StringToStringVarP(&opts, "opt", "o", nil, "Tool option as key=value (repeatable)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output the result as JSON")

	return cmd
}

func readInput(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", errors.New("give either an input argument or --file, not both")
	case len(args) > 0:
		return args[0], nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

func runTool(cmd *cobra.Command, g *Globals, tool, input string, opts map[string]string, jsonOutput bool) error {
	c, err := g.Catalog()
	if err != nil {
		return err
	}

	id := tool
	if rec, ok := c.ByTitle(tool); ok {
		id = transform.ProcessorID(rec.Href)
	}

	res, err := transform.Run(id, input, transform.Options(opts))
	if err != nil {
		if !errors.Is(err, transform.ErrUnknownTool) {
			return err
		}
		if rec, ok := c.ByTitle(tool); ok {
			return fmt.Errorf("'%s' has no local processor; open %s instead", rec.Title, rec.Href)
		}
		if suggestion, ok := search.Suggest(tool, c.Records()); ok {
			return fmt.Errorf("unknown tool '%s'\n\n💡 Did you mean '%s'?", tool, suggestion)
		}
		return fmt.Errorf("unknown tool '%s'\n\n💡 Available: %s", tool, strings.Join(transform.IDs(), ", "))
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, res)
	}
	if !res.OK() {
		return fmt.Errorf("%s: %s", id, res.Error)
	}
	fmt.Fprintln(out, res.Output)
	return nil
}
