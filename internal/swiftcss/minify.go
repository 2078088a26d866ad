package swiftcss

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// MinifyError reports CSS that could not be compacted safely.
type MinifyError struct {
	Offset int // byte offset into the input
	Reason string
	Err    error
}

func (e *MinifyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minify css at offset %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("minify css at offset %d: %s", e.Offset, e.Reason)
}

func (e *MinifyError) Unwrap() error {
	return e.Err
}

// Minify compacts a stylesheet at the token level. Comments are removed,
// whitespace is dropped next to { } ; , > and after :, and the last
// semicolon of a block is omitted. Strings and url() tokens are kept verbatim.
func Minify(src string) (string, error) {
	lexer := css.NewLexer(parse.NewInputString(src))

	var (
		sb        strings.Builder
		depth     int
		offset    int
		space     bool
		semicolon bool
		last      byte
	)
	sb.Grow(len(src))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", &MinifyError{Offset: offset, Reason: "lexer error", Err: err}
			}
			break
		}
		start := offset
		offset += len(text)

		switch tt {
		case css.CommentToken, css.WhitespaceToken:
			space = true
			continue
		case css.SemicolonToken:
			semicolon = true
			space = false
			continue
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return "", &MinifyError{Offset: start, Reason: "unexpected '}'"}
			}
			semicolon = false
		}

		if semicolon {
			sb.WriteByte(';')
			last = ';'
			semicolon = false
		}
		if space && sb.Len() > 0 && !tightByte(last) && !tightToken(tt, text) {
			sb.WriteByte(' ')
		}
		space = false

		sb.Write(text)
		last = text[len(text)-1]
	}

	if depth != 0 {
		return "", &MinifyError{Offset: offset, Reason: fmt.Sprintf("%d unclosed '{'", depth)}
	}
	if semicolon {
		sb.WriteByte(';')
	}
	return sb.String(), nil
}

// tightByte reports whether whitespace after b can be dropped.
func tightByte(b byte) bool {
	switch b {
	case '{', '}', ';', ',', '>', ':':
		return true
	}
	return false
}

// tightToken reports whether whitespace before the token can be dropped.
func tightToken(tt css.TokenType, text []byte) bool {
	switch tt {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.CommaToken:
		return true
	case css.DelimToken:
		return len(text) == 1 && text[0] == '>'
	}
	return false
}
