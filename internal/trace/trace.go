// Package trace builds the step-by-step diagnostic view of a Vigenère
// encryption: the upper-cased text, the key letters aligned under each
// letter, the numeric shift applied at each position, and the resulting
// ciphertext. It drives the same traversal as cipher.Encrypt, so the
// displayed alignment always matches the actual encryption result.
//
// The view is pure data; rendering (plain or styled) is separate and
// printing is left entirely to the caller.
package trace

import (
	"strconv"
	"strings"

	"vigenere/internal/cipher"
)

// Trace holds the four lines of the diagnostic view. Text, Key and Shift
// are column-aligned: every input character occupies one fixed-width column,
// wide enough for the largest shift value on the line. Non-letter columns
// carry a blank placeholder in Key and Shift.
type Trace struct {
	Text   string // upper-cased input
	Key    string // key letter under each letter column
	Shift  string // numeric shift under each letter column
	Result string // ciphertext, identical to cipher.Encrypt's output
}

// Build runs the forward traversal for plaintext and key and returns the
// aligned view. The only failure modes are the key validation errors of
// cipher.NormalizeKey.
func Build(plaintext, key string) (Trace, error) {
	steps, err := cipher.Steps(plaintext, key)
	if err != nil {
		return Trace{}, err
	}

	// One column per input character, padded to the widest shift so the
	// three lines stay aligned even for two-digit shifts.
	width := 1
	for _, st := range steps {
		if st.Letter && st.Shift > 9 {
			width = 2
			break
		}
	}

	var text, keyLine, shiftLine, result strings.Builder
	for i, st := range steps {
		if i > 0 && width > 1 {
			text.WriteByte(' ')
			keyLine.WriteByte(' ')
			shiftLine.WriteByte(' ')
		}
		if st.Letter {
			text.WriteString(pad(string(st.In), width))
			keyLine.WriteString(pad(string(st.KeyLetter), width))
			shiftLine.WriteString(pad(strconv.Itoa(st.Shift), width))
		} else {
			blank := pad("", width)
			text.WriteString(pad(string(st.In), width))
			keyLine.WriteString(blank)
			shiftLine.WriteString(blank)
		}
		result.WriteRune(st.Out)
	}

	return Trace{
		Text:   strings.TrimRight(text.String(), " "),
		Key:    strings.TrimRight(keyLine.String(), " "),
		Shift:  strings.TrimRight(shiftLine.String(), " "),
		Result: result.String(),
	}, nil
}

// pad left-aligns s in a column of the given width.
func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
