package parser

import (
	"strings"
	"unicode"
)

// Block markers and the display statement prefix
const (
	BeginMarker   = "BEGIN CODE"
	EndMarker     = "END CODE"
	DisplayPrefix = "DISPLAY:"
	CommentChar   = "#"
)

// SplitLines splits source text into physical lines, accepting both
// "\n" and "\r\n" separators.
func SplitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CleanLine removes a trailing # comment and surrounding whitespace.
// A # inside a quoted literal still starts a comment.
func CleanLine(line string) string {
	if idx := strings.Index(line, CommentChar); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// SplitDeclaration tokenizes a declaration line on whitespace and '='.
// Delimiters are dropped and runs of them produce no empty tokens, so
// "INT a = 5 b=3" yields [INT a 5 b 3].
func SplitDeclaration(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == '=' || unicode.IsSpace(r)
	})
}

// SplitTemplate splits a display template on '&' and trims every segment.
// Empty segments are kept; the renderer emits nothing for them.
func SplitTemplate(template string) []string {
	segments := strings.Split(template, "&")
	for i, seg := range segments {
		segments[i] = strings.TrimSpace(seg)
	}
	return segments
}
