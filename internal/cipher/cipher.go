// Package cipher implements the Vigenère polyalphabetic substitution
// transform: encryption and decryption of text against a repeating
// alphabetic keyword.
//
// Design goals:
//   - Deterministic, pure transforms (no I/O, no shared state)
//   - Symmetric encrypt/decrypt built on one traversal
//   - Fail-fast key validation before any character is processed
//
// Notes:
//   - The whole pipeline upper-cases before processing, so original letter
//     case is not preserved. Decrypt(Encrypt(p, k), k) reproduces the
//     uppercased form of p.
//   - Non-letters (digits, punctuation, whitespace, non-Latin characters)
//     pass through unchanged and never advance the key.
package cipher

import (
	"errors"
	"strings"
)

const alphabetSize = 26

// ErrEmptyKey is returned when the raw key is the empty string.
var ErrEmptyKey = errors.New("key must not be empty")

// ErrKeyNoLetters is returned when the raw key survives normalization with
// no A-Z characters left (e.g. "123" or "!!").
var ErrKeyNoLetters = errors.New("key must contain at least one letter")

// NormalizeKey produces the key stream for a raw key: every character is
// upper-cased and everything outside A-Z is dropped. The result is what the
// transforms index circularly; it is guaranteed non-empty on success.
func NormalizeKey(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyKey
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	key := b.String()
	if key == "" {
		return "", ErrKeyNoLetters
	}
	return key, nil
}

// Step records one character of a forward (encryption) traversal. For a
// pass-through character Letter is false and KeyLetter/Shift are zero.
type Step struct {
	In        rune // upper-cased input character
	Out       rune // resulting output character
	KeyLetter rune // key letter governing this step
	Shift     int  // KeyLetter's alphabet position (A=0 .. Z=25)
	Letter    bool // whether In took part in shift arithmetic
}

type direction int

const (
	forward  direction = iota // encrypt: (p + s) mod 26
	backward                  // decrypt: (p - s + 26) mod 26
)

// shift moves alphabet position p by s in the given direction. The +26 bias
// on the backward path keeps the operand non-negative before the modulo.
func shift(p, s int, dir direction) int {
	if dir == backward {
		return (p - s + alphabetSize) % alphabetSize
	}
	return (p + s) % alphabetSize
}

// walk runs the shared traversal: it upper-cases text, validates and
// normalizes key, and calls fn once per input character. The key index
// advances only on letters, so inserting or removing non-letters never
// changes which key letter aligns with a given letter.
func walk(text, key string, dir direction, fn func(Step)) error {
	ks, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	keyIdx := 0
	for _, r := range strings.ToUpper(text) {
		if r < 'A' || r > 'Z' {
			fn(Step{In: r, Out: r})
			continue
		}
		kc := rune(ks[keyIdx%len(ks)])
		s := int(kc - 'A')
		out := rune('A' + shift(int(r-'A'), s, dir))
		fn(Step{In: r, Out: out, KeyLetter: kc, Shift: s, Letter: true})
		keyIdx++
	}
	return nil
}

// Encrypt transforms plaintext with the repeating key and returns the
// ciphertext. The output is upper-cased; non-letters are kept in place.
func Encrypt(plaintext, key string) (string, error) {
	return collect(plaintext, key, forward)
}

// Decrypt reverses Encrypt for the same key. For any plaintext p,
// Decrypt(Encrypt(p, key), key) equals strings.ToUpper(p).
func Decrypt(ciphertext, key string) (string, error) {
	return collect(ciphertext, key, backward)
}

func collect(text, key string, dir direction) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	err := walk(text, key, dir, func(st Step) { b.WriteRune(st.Out) })
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Steps returns the full forward traversal of plaintext, one Step per input
// character. It applies the exact rules Encrypt applies, so the recorded
// outputs concatenate to Encrypt's result; diagnostic views build on it.
func Steps(plaintext, key string) ([]Step, error) {
	steps := make([]Step, 0, len(plaintext))
	err := walk(plaintext, key, forward, func(st Step) { steps = append(steps, st) })
	if err != nil {
		return nil, err
	}
	return steps, nil
}
