package kinds

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/validate"
)

func TestAllKindsHavePresets(t *testing.T) {
	require.Len(t, All(), 13)
	for _, k := range All() {
		parsed, err := Parse(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.Equal(t, k, PresetFor(k).Kind)
	}
}

func TestParseAliases(t *testing.T) {
	k, err := Parse("datetime-local")
	require.NoError(t, err)
	assert.Equal(t, DateTime, k)

	k, err = Parse("Phone")
	require.NoError(t, err)
	assert.Equal(t, Telephone, k)

	k, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, Text, k)

	_, err = Parse("color")
	require.Error(t, err)
	assert.Equal(t, Text, PresetFor("color").Kind)
}

func TestApplyDefaultValidators(t *testing.T) {
	opts := Apply(Email, Settings{}, field.Options{})
	require.NotNil(t, opts.OnValidate)
	assert.Equal(t, validate.EmailMessage, opts.OnValidate("nope"))

	opts = Apply(Telephone, Settings{}, field.Options{})
	assert.Equal(t, "123-456-7890", opts.Decoration.Placeholder)
	assert.Empty(t, opts.OnValidate("123-456-7890"))

	opts = Apply(Number, Settings{Min: validate.Bound(0), Max: validate.Bound(100)}, field.Options{})
	assert.Equal(t, "Value must be at most 100", opts.OnValidate("150"))
	assert.Empty(t, opts.OnValidate("50"))

	opts = Apply(Text, Settings{}, field.Options{})
	assert.Nil(t, opts.OnValidate)
}

func TestApplyKeepsCallerChoices(t *testing.T) {
	custom := func(string) string { return "custom" }
	opts := Apply(Email, Settings{}, field.Options{
		OnValidate: custom,
		Decoration: field.Decoration{Placeholder: "work email", Suffix: "@corp"},
	})
	assert.Equal(t, "custom", opts.OnValidate("a@b.com"))
	assert.Equal(t, "work email", opts.Decoration.Placeholder)
	assert.Equal(t, "@corp", opts.Decoration.Suffix)
}

func TestApplyDecoration(t *testing.T) {
	assert.Equal(t, IconSearch, Apply(Search, Settings{}, field.Options{}).Decoration.Suffix)
	assert.Empty(t, Apply(Search, Settings{HideSearchIcon: true}, field.Options{}).Decoration.Suffix)
	assert.Equal(t, IconHidden, Apply(Password, Settings{}, field.Options{}).Decoration.Suffix)
	assert.Empty(t, Apply(Password, Settings{HidePasswordToggle: true}, field.Options{}).Decoration.Suffix)
	assert.Equal(t, IconCalendar, Apply(Date, Settings{}, field.Options{}).Decoration.Suffix)
	assert.NotEmpty(t, Apply(File, Settings{}, field.Options{}).Decoration.FileUploadText)
	assert.True(t, PresetFor(Textarea).Multiline)
	assert.True(t, PresetFor(Password).Secret)
	assert.Equal(t, "email", PresetFor(Email).Autocomplete)
}

func TestSuggest(t *testing.T) {
	corpus := []string{"apple", "apricot", "banana", "grape", "pineapple"}

	got := Suggest("ap", corpus, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "apple", got[0])
	assert.NotContains(t, got, "banana")

	assert.Len(t, Suggest("a", corpus, 2), 2)
	assert.Nil(t, Suggest("  ", corpus, 0))
	assert.Nil(t, Suggest("ap", nil, 0))
}

func testFS() StatFunc {
	mfs := fstest.MapFS{
		"report.pdf":    {Data: make([]byte, 1536)},
		"notes.txt":     {Data: []byte("hi")},
		"docs/read.txt": {Data: []byte("x")},
	}
	return func(p string) (fs.FileInfo, error) { return fs.Stat(mfs, p) }
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitPaths(" a , ,b c,"))
	assert.Nil(t, SplitPaths(""))
}

func TestFileValidator(t *testing.T) {
	single := FileValidator(false, testFS())
	assert.Empty(t, single(""))
	assert.Empty(t, single("report.pdf"))
	assert.Equal(t, "Only one file can be selected", single("report.pdf, notes.txt"))
	assert.Equal(t, "File not found: missing.bin", single("missing.bin"))
	assert.Equal(t, "Not a file: docs", single("docs"))

	multi := FileValidator(true, testFS())
	assert.Empty(t, multi("report.pdf, notes.txt"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "report.pdf (1.5 KiB), notes.txt (2 B), missing.bin", Describe("report.pdf,notes.txt,missing.bin", testFS()))
}
