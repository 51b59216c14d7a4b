// Package lazyparse lifts Lazy K source text into a combinator
// Expression tree: comment stripping, the character-level grammar of
// backtick/star application, jot strings, and parenthesized groups.
package lazyparse

import "strings"

// stripComments truncates every line at its first '#', matching the
// source format's "UTF-8 text, line-oriented for comments only" rule.
// Newlines are preserved so downstream line/column tracking lines up
// with the original file.
func stripComments(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// lexer scans a comment-stripped source string one significant
// character at a time, tracking 1-based line/column for diagnostics.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: stripComments(src), line: 1, col: 1}
}

// position reports the current line/column.
func (l *lexer) position() (line, col int) {
	return l.line, l.col
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advance()
			continue
		}
		break
	}
}

// peek returns the next significant (post-whitespace) character
// without consuming it, and whether one exists before EOF.
func (l *lexer) peek() (byte, bool) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// take consumes and returns the next significant character.
func (l *lexer) take() byte {
	l.skipSpace()
	return l.advance()
}

func isJotDigit(c byte) bool { return c == '0' || c == '1' }
