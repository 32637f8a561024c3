package transform

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountWords reports words, characters, sentences and paragraphs.
func CountWords(input string, _ Options) Result {
	words := len(strings.Fields(input))
	chars := utf8.RuneCountInString(input)
	noSpaces := utf8.RuneCountInString(strings.Join(strings.Fields(input), ""))

	sentences := 0
	for _, s := range strings.FieldsFunc(input, func(r rune) bool { return r == '.' || r == '!' || r == '?' }) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return Result{Output: fmt.Sprintf(
		"words: %d\ncharacters: %d\ncharacters_no_spaces: %d\nsentences: %d\nparagraphs: %d",
		words, chars, noSpaces, sentences, paragraphs,
	)}
}

// ConvertCase rewrites text in the requested case.
//
// Options:
//   - mode: upper (default), lower, title or sentence
func ConvertCase(input string, opts Options) Result {
	switch mode := opts.Get("mode", "upper"); mode {
	case "upper":
		return Result{Output: strings.ToUpper(input)}
	case "lower":
		return Result{Output: strings.ToLower(input)}
	case "title":
		return Result{Output: titleCase(input)}
	case "sentence":
		return Result{Output: sentenceCase(input)}
	default:
		return fail("unknown mode %q (want upper, lower, title or sentence)", mode)
	}
}

func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func sentenceCase(s string) string {
	var b strings.Builder
	startOfSentence := true
	for _, r := range strings.ToLower(s) {
		if startOfSentence && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			startOfSentence = false
			continue
		}
		if r == '.' || r == '!' || r == '?' {
			startOfSentence = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Base64 encodes or decodes standard Base64.
//
// Options:
//   - mode: encode (default) or decode
func Base64(input string, opts Options) Result {
	switch mode := opts.Get("mode", "encode"); mode {
	case "encode":
		return Result{Output: base64.StdEncoding.EncodeToString([]byte(input))}
	case "decode":
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input))
		if err != nil {
			return fail("invalid base64: %v", err)
		}
		return Result{Output: string(data)}
	default:
		return fail("unknown mode %q (want encode or decode)", mode)
	}
}

// URLEncode percent-encodes or decodes query-string text.
//
// Options:
//   - mode: encode (default) or decode
func URLEncode(input string, opts Options) Result {
	switch mode := opts.Get("mode", "encode"); mode {
	case "encode":
		return Result{Output: url.QueryEscape(input)}
	case "decode":
		out, err := url.QueryUnescape(input)
		if err != nil {
			return fail("invalid encoding: %v", err)
		}
		return Result{Output: out}
	default:
		return fail("unknown mode %q (want encode or decode)", mode)
	}
}
