package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    Options
		want    string
		wantErr string
	}{
		{
			name:  "pretty",
			input: `{"a":1,"b":[1,2]}`,
			want:  "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}",
		},
		{
			name:  "pretty four spaces",
			input: `{"a":1}`,
			opts:  Options{"indent": "4"},
			want:  "{\n    \"a\": 1\n}",
		},
		{
			name:  "minify",
			input: "{ \"a\" : 1,\n \"b\" : \"x y\" }",
			opts:  Options{"mode": "minify"},
			want:  `{"a":1,"b":"x y"}`,
		},
		{
			name:  "lenient strips comments and trailing commas",
			input: "{\"a\": 1, // note\n}",
			opts:  Options{"mode": "minify", "lenient": "true"},
			want:  `{"a":1}`,
		},
		{
			name:  "validate ok",
			input: `[1, 2, 3]`,
			opts:  Options{"mode": "validate"},
			want:  "valid JSON",
		},
		{name: "validate broken", input: `{"a":`, opts: Options{"mode": "validate"}, wantErr: "invalid JSON"},
		{name: "comments without lenient", input: "{\"a\": 1 // x\n}", wantErr: "invalid JSON"},
		{name: "empty", input: "  ", wantErr: "input is empty"},
		{name: "bad mode", input: `{}`, opts: Options{"mode": "shuffle"}, wantErr: "unknown mode"},
		{name: "bad indent", input: `{}`, opts: Options{"indent": "12"}, wantErr: "indent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if opts == nil {
				opts = Options{}
			}
			res := FormatJSON(tt.input, opts)
			if tt.wantErr != "" {
				assert.False(t, res.OK())
				assert.Contains(t, res.Error, tt.wantErr)
				return
			}
			assert.True(t, res.OK(), res.Error)
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	res := MarkdownToHTML("# Title\n\nSome *text* and ~~old~~.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", Options{})
	assert.True(t, res.OK(), res.Error)
	assert.Contains(t, res.Output, "<h1>Title</h1>")
	assert.Contains(t, res.Output, "<em>text</em>")
	assert.Contains(t, res.Output, "<del>old</del>")
	assert.Contains(t, res.Output, "<table>")

	res = MarkdownToHTML("<script>alert(1)</script>\n", Options{})
	assert.NotContains(t, res.Output, "<script>")

	assert.False(t, MarkdownToHTML("", Options{}).OK())
}
