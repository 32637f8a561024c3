/*
Package transform implements the text tools that run locally: JSON
formatting, Markdown rendering, number-base and timestamp conversion, keyword
density, and a few small string utilities.

Every processor takes the raw input plus string options and returns a Result
holding either the output or an error message. Processors never panic out to
the caller; a failure is reported in Result.Error.
*/
package transform

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownTool is returned by Run for an id with no local processor.
var ErrUnknownTool = errors.New("no local processor for tool")

// Options carries per-tool settings such as mode=minify.
type Options map[string]string

// Get returns the option value or def when unset or blank.
func (o Options) Get(key, def string) string {
	if v, ok := o[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// Int returns the option parsed as an int, or def when unset or malformed.
func (o Options) Int(key string, def int) int {
	v, err := strconv.Atoi(o.Get(key, ""))
	if err != nil {
		return def
	}
	return v
}

// Bool returns the option parsed as a bool, or def when unset or malformed.
func (o Options) Bool(key string, def bool) bool {
	v, err := strconv.ParseBool(o.Get(key, ""))
	if err != nil {
		return def
	}
	return v
}

// Result is the outcome of one processor run. Exactly one field is set.
type Result struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// OK reports whether the run succeeded.
func (r Result) OK() bool {
	return r.Error == ""
}

// Processor transforms input text.
type Processor func(input string, opts Options) Result

var processors = map[string]Processor{
	"json-formatter":        FormatJSON,
	"markdown-to-html":      MarkdownToHTML,
	"number-base-converter": ConvertBase,
	"timestamp-converter":   ConvertTimestamp,
	"keyword-density":       KeywordDensity,
	"word-counter":          CountWords,
	"case-converter":        ConvertCase,
	"base64":                Base64,
	"url-encoder":           URLEncode,
}

// Lookup returns the processor registered under id.
func Lookup(id string) (Processor, bool) {
	p, ok := processors[strings.ToLower(strings.TrimSpace(id))]
	return p, ok
}

// IDs returns every registered processor id, sorted.
func IDs() []string {
	ids := make([]string, 0, len(processors))
	for id := range processors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProcessorID maps a catalog href such as /tools/json-formatter to its processor id.
func ProcessorID(href string) string {
	href = strings.TrimRight(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}

// Run executes the processor registered under id.
func Run(id, input string, opts Options) (Result, error) {
	p, ok := Lookup(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return safeRun(p, input, opts), nil
}

// safeRun converts a panic inside a processor into an error result.
func safeRun(p Processor, input string, opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()
	if opts == nil {
		opts = Options{}
	}
	return p(input, opts)
}

func fail(format string, args ...interface{}) Result {
	return Result{Error: fmt.Sprintf(format, args...)}
}
