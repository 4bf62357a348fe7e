// Package casebody parses the markup blob carried by an imported corpus
// record. The markup is XML-ish but frequently malformed, so it is parsed
// leniently as HTML. The package exposes the pieces the merge engine
// consumes: ordered opinion segments with their author attributions, the
// auxiliary metadata tags, and plain-text rendering for similarity
// comparison.
package casebody

import (
	"strings"

	"golang.org/x/net/html"
)

// Segment is one embedded opinion within a casebody, in document order.
type Segment struct {
	// Markup is the opinion element rendered verbatim, including its tag.
	Markup string
	// Author is the text of the segment's author sub-element, empty when
	// the segment carries none.
	Author string

	node *html.Node
}

func parse(markup string) (*html.Node, error) {
	return html.Parse(strings.NewReader(markup))
}

// Opinions extracts the ordered opinion segments from casebody markup.
// A casebody with no opinion elements yields an empty slice.
func Opinions(markup string) ([]Segment, error) {
	root, err := parse(markup)
	if err != nil {
		return nil, err
	}

	var segments []Segment
	for _, node := range elementsByTag(root, "opinion") {
		segment := Segment{node: node}
		if rendered, err := render(node); err == nil {
			segment.Markup = rendered
		}
		if authors := elementsByTag(node, "author"); len(authors) > 0 {
			segment.Author = collapse(nodeText(authors[0], nil))
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

// ComparisonText renders the segment as plain text with author elements
// removed, so that an authorship line does not skew body similarity.
func (s Segment) ComparisonText() string {
	if s.node == nil {
		return ""
	}
	return collapse(nodeText(s.node, map[string]struct{}{"author": {}}))
}

// Text converts markup to collapsed plain text.
func Text(markup string) string {
	root, err := parse(markup)
	if err != nil {
		return ""
	}
	return collapse(nodeText(root, nil))
}

// TagText returns the text content of every element with the given tag,
// in document order.
func TagText(markup, tag string) ([]string, error) {
	root, err := parse(markup)
	if err != nil {
		return nil, err
	}
	var texts []string
	for _, node := range elementsByTag(root, tag) {
		if text := collapse(nodeText(node, nil)); text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}

func elementsByTag(root *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
			// Tags of interest never nest within themselves.
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}

func nodeText(node *html.Node, skipTags map[string]struct{}) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skipTags[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return b.String()
}

func render(node *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
