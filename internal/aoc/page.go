package aoc

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Puzzle is the parsed form of a day's puzzle page. Articles holds the
// prose of each unlocked half; Examples the candidate example inputs in
// page order (the service marks them up as <pre><code> blocks).
type Puzzle struct {
	Year     int
	Day      int
	Title    string
	Articles []string
	Examples []string
}

var titlePattern = regexp.MustCompile(`--- Day \d+: (.+) ---`)

// ParsePuzzlePage extracts title, prose and example blocks from puzzle page
// HTML. Only <article class="day-desc"> subtrees are considered, which
// keeps navigation and sponsor markup out.
func ParsePuzzlePage(page []byte) (*Puzzle, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("aoc: parse puzzle page: %w", err)
	}
	puzzle := &Puzzle{}
	for _, article := range findAll(root, isDayDescArticle) {
		text := strings.TrimSpace(nodeText(article))
		puzzle.Articles = append(puzzle.Articles, text)
		if puzzle.Title == "" {
			if m := titlePattern.FindStringSubmatch(text); m != nil {
				puzzle.Title = m[1]
			}
		}
		for _, pre := range findAll(article, func(n *html.Node) bool { return isElement(n, "pre") }) {
			code := strings.TrimRight(nodeText(pre), "\n")
			if code != "" {
				puzzle.Examples = append(puzzle.Examples, code+"\n")
			}
		}
	}
	if len(puzzle.Articles) == 0 {
		return nil, fmt.Errorf("aoc: no puzzle text found on page")
	}
	return puzzle, nil
}

// Example returns the example input for a part. Part two prefers a second
// example block when the page has one, otherwise falls back to the first.
func (p *Puzzle) Example(partTwo bool) string {
	if len(p.Examples) == 0 {
		return ""
	}
	if partTwo && len(p.Examples) > 1 {
		return p.Examples[1]
	}
	return p.Examples[0]
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func isDayDescArticle(n *html.Node) bool {
	if !isElement(n, "article") {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, "day-desc") {
			return true
		}
	}
	return false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			found = append(found, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return buf.String()
}
