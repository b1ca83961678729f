package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Tag is a rendered word as read back from the output document.
type Tag struct {
	Word  string
	Class string
	Title string
}

// ParseTags parses the output document of result and returns its tags in
// document order.
func ParseTags(t *testing.T, result *HarnessResult) []Tag {
	t.Helper()

	require.True(t, result.OutputExists, "expected an output file at %s", result.OutputPath)
	root, err := html.Parse(strings.NewReader(result.Output))
	require.NoError(t, err)

	var tags []Tag
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" {
			tag := Tag{}
			if n.FirstChild != nil {
				tag.Word = n.FirstChild.Data
			}
			for _, a := range n.Attr {
				switch a.Key {
				case "class":
					tag.Class = a.Val
				case "title":
					tag.Title = a.Val
				}
			}
			tags = append(tags, tag)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return tags
}

// AssertNoOutput checks that a failed run left no output file behind.
func AssertNoOutput(t *testing.T, result *HarnessResult) {
	t.Helper()

	require.Error(t, result.Err)
	require.False(t, result.OutputExists, "output file %s must not exist after a failed run", result.OutputPath)
}
