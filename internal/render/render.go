// Package render turns a word selection into an HTML tag cloud document.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/vk/tagcloud/internal/ranking"
)

// Font size bounds, matching the f11..f48 classes of tagcloud.css.
const (
	MinFontSize = 11
	MaxFontSize = 48
)

// Stylesheets linked from every document.
const (
	RemoteStylesheet = "https://cse22x1.engineering.osu.edu/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css"
	LocalStylesheet  = "tagcloud.css"
)

var page = template.Must(template.New("tagcloud").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <title>{{.Title}}</title>
    <link href="{{.RemoteStylesheet}}" rel="stylesheet" type="text/css">
    <link href="{{.LocalStylesheet}}" rel="stylesheet" type="text/css">
  </head>
  <body>
    <h2>{{.Title}}</h2>
    <hr>
    <div class="cdiv">
      <p class="cbox">
{{- range .Words}}
        <span style="cursor:default" class="f{{.FontSize}}" title="count: {{.Count}}">{{.Text}}</span>
{{- end}}
      </p>
    </div>
  </body>
</html>
`))

// Word is a single tag of the cloud.
type Word struct {
	Text     string
	Count    int
	FontSize int
}

type document struct {
	Title            string
	RemoteStylesheet string
	LocalStylesheet  string
	Words            []Word
}

// FontSize maps count linearly from [minCount, maxCount] onto
// [MinFontSize, MaxFontSize], truncating. Every count maps to MinFontSize
// when the range is empty.
func FontSize(count, minCount, maxCount int) int {
	if maxCount == minCount {
		return MinFontSize
	}
	return MinFontSize + (MaxFontSize-MinFontSize)*(count-minCount)/(maxCount-minCount)
}

// Title returns the heading used for a cloud of n words from inputName.
func Title(n int, inputName string) string {
	return fmt.Sprintf("Top %d words in %s", n, inputName)
}

// Words sizes every entry of sel, keeping its order.
func Words(sel *ranking.Selection) []Word {
	words := make([]Word, 0, sel.Len())
	for _, e := range sel.Entries {
		words = append(words, Word{
			Text:     e.Word,
			Count:    e.Count,
			FontSize: FontSize(e.Count, sel.MinCount, sel.MaxCount),
		})
	}
	return words
}

// Render writes the HTML document for sel to w.
func Render(w io.Writer, inputName string, sel *ranking.Selection) error {
	doc := document{
		Title:            Title(sel.Len(), inputName),
		RemoteStylesheet: RemoteStylesheet,
		LocalStylesheet:  LocalStylesheet,
		Words:            Words(sel),
	}
	if err := page.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to render tag cloud: %w", err)
	}
	return nil
}
