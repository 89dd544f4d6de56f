package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidJSON is returned when text is not valid JSON once its comments
// have been stripped.
var ErrInvalidJSON = errors.New("invalid JSON")

// Decode strips comments from text and parses the remainder as a single JSON
// value. Numbers are kept as json.Number so that Format reproduces them
// exactly as written. Text must be valid UTF-8.
func Decode(text string) (any, error) {
	if offset := invalidUTF8(text); offset >= 0 {
		line, col := position(text, int64(offset))
		return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d (line %d, column %d)", ErrInvalidJSON, offset, line, col)
	}

	clean := Strip(text)

	dec := json.NewDecoder(strings.NewReader(clean))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no value found", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, describe(clean, err))
	}

	// Anything other than whitespace after the value is an error.
	end := dec.InputOffset()
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, describe(clean, err))
		}
		line, col := position(clean, end)
		return nil, fmt.Errorf("%w: trailing content after top-level value at line %d, column %d", ErrInvalidJSON, line, col)
	}

	return v, nil
}

// Format renders v as two-space indented JSON followed by a newline.
// Object keys come out sorted, so equal values always format identically.
func Format(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to format JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Canonicalize is Decode followed by Format.
func Canonicalize(text string) ([]byte, error) {
	v, err := Decode(text)
	if err != nil {
		return nil, err
	}
	return Format(v)
}

// describe adds a position to decoder errors that carry an offset. Positions
// refer to the stripped text; a removed multi-line block comment shifts the
// line count relative to the source.
func describe(clean string, err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(clean, syntaxErr.Offset)
		return fmt.Sprintf("%s (line %d, column %d after comment removal)", syntaxErr.Error(), line, col)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return "unexpected end of input"
	}
	return err.Error()
}

// invalidUTF8 returns the byte offset of the first invalid UTF-8 sequence in
// text, or -1.
func invalidUTF8(text string) int {
	if utf8.ValidString(text) {
		return -1
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// position converts a byte offset into 1-based line and column numbers.
func position(text string, offset int64) (int, int) {
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := len(before) - strings.LastIndex(before, "\n")
	return line, col
}
