package card

import (
	"testing"

	"github.com/f3rmion/adjespin/internal/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	happy := word.Enriched{Word: "happy", Definition: "feeling joy", Pronunciation: "/ˈhæpi/"}
	assert.Equal(t, "happy (/ˈhæpi/)\nfeeling joy", Format(happy))

	happy.Example = "a happy child"
	assert.Equal(t, "happy (/ˈhæpi/)\nfeeling joy\n\"a happy child\"", Format(happy))

	assert.Equal(t, "blue\n(no definition found)", Format(word.Empty("blue")))
}

func TestOneLine(t *testing.T) {
	f := NewFormatter()
	require.NoError(t, f.SetTemplate(OneLineTemplate))

	out, err := f.Format(word.Enriched{Word: "happy", Definition: "feeling joy"})
	require.NoError(t, err)
	assert.Equal(t, "happy - feeling joy", out)

	out, err = f.Format(word.Empty("blue"))
	require.NoError(t, err)
	assert.Equal(t, "blue", out)
}

func TestSetTemplateError(t *testing.T) {
	require.Error(t, NewFormatter().SetTemplate("{{ .Word "))
}
