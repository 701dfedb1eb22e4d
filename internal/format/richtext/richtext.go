// Package richtext turns the ingredient markup produced by the web editor into
// lines that can be drawn in a terminal.
package richtext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var markup = regexp.MustCompile(`<[a-zA-Z!/]`)

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "blockquote": true,
	"pre": true, "tr": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Lines returns the display lines for src. List items become bullets (or
// numbers for ordered lists), block elements become separate lines and
// whitespace is collapsed. Text without markup is split on newlines.
func Lines(src string) []string {
	return parse(src, true)
}

// PlainText joins Lines with newlines.
func PlainText(src string) string {
	return strings.Join(Lines(src), "\n")
}

// Summary returns the lines joined with a separator, for single-row layouts.
// List markers are left out since the separator already delimits entries.
func Summary(src, sep string) string {
	return strings.Join(parse(src, false), sep)
}

func parse(src string, markers bool) []string {
	if !markup.MatchString(src) {
		return splitPlain(src)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return splitPlain(src)
	}
	c := &collector{markers: markers}
	c.walk(doc.Find("body"))
	c.flush()
	return c.lines
}

type collector struct {
	lines   []string
	buf     strings.Builder
	markers bool
}

func (c *collector) flush() {
	text := condense(c.buf.String())
	c.buf.Reset()
	if text != "" {
		c.lines = append(c.lines, text)
	}
}

func (c *collector) walk(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case name == "#text":
			c.buf.WriteString(node.Text())
		case name == "#comment", name == "script", name == "style":
		case name == "br":
			c.flush()
		case name == "ul", name == "ol":
			c.flush()
			node.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
				marker := "• "
				if name == "ol" {
					marker = fmt.Sprintf("%d. ", i+1)
				}
				item := &collector{markers: c.markers}
				item.walk(li)
				item.flush()
				for j, line := range item.lines {
					if !c.markers {
						c.lines = append(c.lines, line)
						continue
					}
					if j == 0 {
						line = marker + line
					} else {
						line = "  " + line
					}
					c.lines = append(c.lines, line)
				}
			})
		case blockTags[name]:
			c.flush()
			c.walk(node)
			c.flush()
		default:
			c.walk(node)
		}
	})
}

func condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func splitPlain(src string) []string {
	raw := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
