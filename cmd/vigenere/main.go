// Package main provides the vigenere CLI: a small front end over the pure
// cipher transform in internal/cipher.
//
// Modes:
//   - encrypt : vigenere encrypt -k KEY "message"  (or - to read stdin)
//   - decrypt : vigenere decrypt -k KEY "message"
//   - trace   : vigenere trace   -k KEY "message"  (step-by-step view)
//
// Key design goals:
//   - Deterministic output: the transform itself does no I/O
//   - Clear, minimal flags; the key is the only required option
//   - Errors reported once on stderr with a non-zero exit
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
