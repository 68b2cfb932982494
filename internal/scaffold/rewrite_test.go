package scaffold

import (
	"os"
	"regexp"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOptions = Options{
	Name:        "my-el",
	Author:      "Jane Doe <jane@example.com>",
	Description: "Shows $1 things",
	Version:     "1.2.3",
	Repository:  "jane/my-el",
}

func TestTokenMap_Apply(t *testing.T) {
	in := `<ELEMENT-NAME> by element-author
Element-Description
v ELEMENT-VERSION ELEMENT-VERSION
https://github.com/repository-name
again: ELEMENT-NAME`

	out := testOptions.Tokens().Apply(in)

	assert.Equal(t, `<my-el> by Jane Doe <jane@example.com>
Shows $1 things
v 1.2.3 1.2.3
https://github.com/jane/my-el
again: my-el`, out)
}

func TestTokenMap_NoPlaceholdersRemain(t *testing.T) {
	in := "ELEMENT-NAME element-name Element-Name ELEMENT-AUTHOR eLeMeNt-AuThOr " +
		"ELEMENT-DESCRIPTION ELEMENT-VERSION element-version REPOSITORY-NAME Repository-Name"

	out := testOptions.Tokens().Apply(in)

	leftover := regexp.MustCompile(`(?i)ELEMENT-(NAME|AUTHOR|DESCRIPTION|VERSION)|REPOSITORY-NAME`)
	assert.False(t, leftover.MatchString(out), out)
	assert.Equal(t, 5, countOf(out, "my-el"))
	assert.Equal(t, 2, countOf(out, "jane/my-el"))
	assert.Equal(t, 2, countOf(out, "1.2.3"))
}

func TestTokenMap_Order(t *testing.T) {
	// The name is replaced first, so a name containing another placeholder
	// is itself rewritten by the later pass.
	tokens := TokenMap{
		{PlaceholderName, "element-version"},
		{PlaceholderVersion, "9.9.9"},
	}

	assert.Equal(t, "9.9.9", tokens.Apply("ELEMENT-NAME"))
}

func TestRewrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/out/README.md", []byte("# ELEMENT-NAME\nELEMENT-DESCRIPTION\n"), 0644))

	require.NoError(t, Rewrite(fsys, "/out/README.md", testOptions.Tokens()))

	data, err := afero.ReadFile(fsys, "/out/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# my-el\nShows $1 things\n", string(data))
}

func TestRewrite_MissingFile(t *testing.T) {
	err := Rewrite(afero.NewMemMapFs(), "/out/missing.html", testOptions.Tokens())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/out/missing.html")
}

func countOf(s, sub string) int {
	return len(regexp.MustCompile(regexp.QuoteMeta(sub)).FindAllStringIndex(s, -1))
}
