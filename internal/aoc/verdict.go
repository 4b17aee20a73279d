package aoc

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Verdict classifies the service's reaction to a submitted answer.
type Verdict string

const (
	VerdictCorrect     Verdict = "correct"
	VerdictIncorrect   Verdict = "incorrect"
	VerdictTooRecent   Verdict = "too-recent"
	VerdictAlreadyDone Verdict = "already-answered"
	VerdictUnknown     Verdict = "unknown"
)

// SubmitResult pairs the verdict with the service's own message, which
// carries hints (wait time, too high / too low).
type SubmitResult struct {
	Verdict Verdict
	Message string
}

// Correct reports whether the submission earned a star.
func (r SubmitResult) Correct() bool {
	return r.Verdict == VerdictCorrect
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// ParseSubmitResponse classifies the HTML the service returns after an
// answer POST. The page wraps the outcome message in an <article>.
func ParseSubmitResponse(page []byte) (SubmitResult, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("aoc: parse submit response: %w", err)
	}
	articles := findAll(root, func(n *html.Node) bool { return isElement(n, "article") })
	if len(articles) == 0 {
		return SubmitResult{}, fmt.Errorf("aoc: submit response has no message")
	}
	message := strings.TrimSpace(whitespacePattern.ReplaceAllString(nodeText(articles[0]), " "))
	return SubmitResult{Verdict: classifyMessage(message), Message: message}, nil
}

func classifyMessage(message string) Verdict {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "that's the right answer"):
		return VerdictCorrect
	case strings.Contains(lower, "that's not the right answer"):
		return VerdictIncorrect
	case strings.Contains(lower, "you gave an answer too recently"):
		return VerdictTooRecent
	case strings.Contains(lower, "did you already complete it"),
		strings.Contains(lower, "you don't seem to be solving the right level"):
		return VerdictAlreadyDone
	}
	return VerdictUnknown
}
