package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigenere/internal/cipher"
	"vigenere/internal/diffutil"
)

// requireLines compares a multi-line rendering against the expected text and
// reports mismatches as a unified diff.
func requireLines(t *testing.T, want, got string) {
	t.Helper()
	if want != got {
		t.Fatalf("rendered trace mismatch:\n%s",
			diffutil.Unified("want", "got", want+"\n", got+"\n", diffutil.Options{}))
	}
}

func TestBuildHelloWorld(t *testing.T) {
	tr, err := Build("HELLO WORLD", "KEY")
	require.NoError(t, err)

	// Shifts reach two digits, so every column is two wide plus a separator.
	assert.Equal(t, "H  E  L  L  O     W  O  R  L  D", tr.Text)
	assert.Equal(t, "K  E  Y  K  E     Y  K  E  Y  K", tr.Key)
	assert.Equal(t, "10 4  24 10 4     24 10 4  24 10", tr.Shift)
	assert.Equal(t, "RIJVS UYVJN", tr.Result)
}

func TestBuildSingleDigitShifts(t *testing.T) {
	// Key letters A-J keep every shift below 10; columns stay one wide and
	// the text line is the plain upper-cased input.
	tr, err := Build("Hi!", "abc")
	require.NoError(t, err)

	assert.Equal(t, "HI!", tr.Text)
	assert.Equal(t, "AB", tr.Key)
	assert.Equal(t, "01", tr.Shift)
	assert.Equal(t, "HJ!", tr.Result)
}

func TestBuildMatchesEncrypt(t *testing.T) {
	inputs := []string{"ATTACK AT DAWN!", "a1b2c3", "", "no-op, really?"}
	for _, p := range inputs {
		tr, err := Build(p, "LeMoN")
		require.NoError(t, err)
		want, err := cipher.Encrypt(p, "LeMoN")
		require.NoError(t, err)
		assert.Equal(t, want, tr.Result, "plaintext=%q", p)
	}
}

func TestBuildAlignment(t *testing.T) {
	// Key and Shift never extend past Text, and the key column under every
	// letter is the letter that actually encrypted it.
	tr, err := Build("ATTACK AT DAWN!", "LEMON")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(tr.Key), len(tr.Text))
	assert.LessOrEqual(t, len(tr.Shift), len(tr.Text))

	steps, err := cipher.Steps("ATTACK AT DAWN!", "LEMON")
	require.NoError(t, err)
	// Columns are 3 bytes apart (2-wide column + separator).
	for i, st := range steps {
		col := i * 3
		if !st.Letter {
			continue
		}
		assert.Equal(t, byte(st.KeyLetter), tr.Key[col], "column %d", i)
	}
}

func TestBuildInvalidKey(t *testing.T) {
	_, err := Build("HELLO", "")
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
	_, err = Build("HELLO", "123")
	assert.ErrorIs(t, err, cipher.ErrKeyNoLetters)
}

func TestRenderPlain(t *testing.T) {
	tr, err := Build("HELLO WORLD", "KEY")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Text:    H  E  L  L  O     W  O  R  L  D",
		"Key:     K  E  Y  K  E     Y  K  E  Y  K",
		"Shift:   10 4  24 10 4     24 10 4  24 10",
		"Result:  RIJVS UYVJN",
	}, "\n")
	requireLines(t, want, tr.Plain())
}

func TestRenderDefaultThemeKeepsContent(t *testing.T) {
	tr, err := Build("Hi!", "abc")
	require.NoError(t, err)

	out := tr.Render(DefaultTheme())
	for _, frag := range []string{"Text:", "Key:", "Shift:", "Result:", "HJ!"} {
		assert.Contains(t, out, frag)
	}
}
