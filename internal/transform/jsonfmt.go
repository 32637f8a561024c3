package transform

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/jsonc"
)

// FormatJSON prettifies, minifies or validates JSON.
//
// Options:
//   - mode: pretty (default), minify or validate
//   - indent: spaces per level for pretty (default 2)
//   - lenient: strip comments and trailing commas first
func FormatJSON(input string, opts Options) Result {
	data := []byte(strings.TrimSpace(input))
	if len(data) == 0 {
		return fail("input is empty")
	}
	if opts.Bool("lenient", false) {
		data = jsonc.ToJSON(data)
	}

	switch mode := opts.Get("mode", "pretty"); mode {
	case "pretty":
		indent := opts.Int("indent", 2)
		if indent < 0 || indent > 8 {
			return fail("indent must be between 0 and 8")
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
			return fail("invalid JSON: %v", err)
		}
		return Result{Output: buf.String()}

	case "minify":
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return fail("invalid JSON: %v", err)
		}
		return Result{Output: buf.String()}

	case "validate":
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return fail("invalid JSON: %v", err)
		}
		return Result{Output: "valid JSON"}

	default:
		return fail("unknown mode %q (want pretty, minify or validate)", mode)
	}
}
