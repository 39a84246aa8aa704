package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		input  string
		expect string
	}{
		{"  hello   world ", "hello world"},
		{"a\n\tb\n", "a b"},
		{"already clean", "already clean"},
		{"", ""},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, CleanText(test.input))
	}
}

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div><span>an <b>apple</b></span> a day</div>`,
	))
	require.NoError(t, err)

	div := doc.Find("div")
	require.Len(t, div.Nodes, 1)
	require.Equal(t, "an apple a day", GetText(div.Nodes[0]))
}
