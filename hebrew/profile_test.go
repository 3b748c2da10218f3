package hebrew

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	require.NotNil(t, p)

	assert.Equal(t, "גיל", p.Normalize("גִיל"))
	assert.Equal(t, []string{"קצבה"}, p.ExtractKeywords("קצבה של"))
	assert.Equal(t, "סעיף 3(א)", p.ExtractSectionRef("ראו סעיף 3(א) לחוק"))
}

func TestNewProfile_Defaults(t *testing.T) {
	p, err := NewProfile(ProfileConfig{})
	require.NoError(t, err)

	// All-zero config compiles to the built-in Hebrew behavior.
	assert.Equal(t, ExtractKeywords("תנאי זכאות של המבוטח"), p.ExtractKeywords("תנאי זכאות של המבוטח"))
	assert.Equal(t, Normalize("אַב  ג"), p.Normalize("אַב  ג"))
}

func TestNewProfile_CustomStopWords(t *testing.T) {
	p, err := NewProfile(ProfileConfig{StopWords: []string{"תנאי"}})
	require.NoError(t, err)

	got := p.ExtractKeywords("תנאי זכאות")
	assert.Equal(t, []string{"זכאות"}, got)

	// Default stop words no longer apply under the custom set.
	got = p.ExtractKeywords("זכאות של")
	assert.Equal(t, []string{"זכאות", "של"}, got)
}

func TestNewProfile_InvalidPattern(t *testing.T) {
	_, err := NewProfile(ProfileConfig{SectionPattern: "["})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewProfile(ProfileConfig{SeparatorPattern: "(unclosed"})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestNewProfile_InvalidMarksRange(t *testing.T) {
	_, err := NewProfile(ProfileConfig{MarksLo: 0x05C7, MarksHi: 0x0591})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewProfile(ProfileConfig{MarksLo: 0x0591, MarksHi: 0x110000})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")

	content := `stop_words:
  - foo
  - bar
min_keyword_length: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)

	got := p.ExtractKeywords("foo bar abcd ab")
	assert.Equal(t, []string{"abcd"}, got)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, "סעיף 12(ב)", p.ExtractSectionRef("סעיף 12(ב) מפרט את רמות הזכאות"))
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadProfile_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stop_words: [unclosed"), 0o644))

	_, err := LoadProfile(path)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}
