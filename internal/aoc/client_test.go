package aoc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html><head><title>Day 3 - Advent of Code 2025</title></head>
<body>
<nav><a href="/2025">[Calendar]</a></nav>
<main>
<article class="day-desc">
<h2>--- Day 3: Mull It Over ---</h2>
<p>Some prose about corrupted memory.</p>
<pre><code>xmul(2,4)%&amp;mul[3,7]</code></pre>
</article>
<article class="day-desc">
<h2>--- Part Two ---</h2>
<p>More prose.</p>
<pre><code>don't()mul(5,5)do()</code></pre>
</article>
</main>
</body></html>`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient("test-token", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return server, client
}

func TestClientRequiresToken(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestInputSendsSessionCookie(t *testing.T) {
	var gotCookie, gotAgent, gotPath string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			gotCookie = c.Value
		}
		gotAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Write([]byte("1 2 3\n"))
	})
	input, err := client.Input(context.Background(), 2025, 3)
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if input != "1 2 3\n" {
		t.Fatalf("input = %q", input)
	}
	if gotCookie != "test-token" {
		t.Fatalf("cookie = %q", gotCookie)
	}
	if !strings.Contains(gotAgent, "aockit") {
		t.Fatalf("user agent = %q", gotAgent)
	}
	if gotPath != "/2025/day/3/input" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestInputNotAvailableYet(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	if _, err := client.Input(context.Background(), 2025, 26); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestPuzzleParsesPage(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	})
	puzzle, err := client.Puzzle(context.Background(), 2025, 3)
	if err != nil {
		t.Fatalf("puzzle: %v", err)
	}
	if puzzle.Title != "Mull It Over" {
		t.Fatalf("title = %q", puzzle.Title)
	}
	if len(puzzle.Articles) != 2 {
		t.Fatalf("articles = %d, want 2", len(puzzle.Articles))
	}
	if len(puzzle.Examples) != 2 {
		t.Fatalf("examples = %d, want 2", len(puzzle.Examples))
	}
	if puzzle.Example(false) != "xmul(2,4)%&mul[3,7]\n" {
		t.Fatalf("example a = %q", puzzle.Example(false))
	}
	if puzzle.Example(true) != "don't()mul(5,5)do()\n" {
		t.Fatalf("example b = %q", puzzle.Example(true))
	}
}

func TestPuzzleExampleFallback(t *testing.T) {
	puzzle := &Puzzle{Examples: []string{"only\n"}}
	if puzzle.Example(true) != "only\n" {
		t.Fatalf("part two should fall back to the first example")
	}
}

func TestSubmitPostsFormAndClassifies(t *testing.T) {
	var gotLevel, gotAnswer string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		r.ParseForm()
		gotLevel = r.PostFormValue("level")
		gotAnswer = r.PostFormValue("answer")
		w.Write([]byte(`<html><body><article><p>That's the right answer! You are one gold star closer.</p></article></body></html>`))
	})
	result, err := client.Submit(context.Background(), 2025, 3, 2, "161")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct() {
		t.Fatalf("verdict = %s, want correct", result.Verdict)
	}
	if gotLevel != "2" || gotAnswer != "161" {
		t.Fatalf("form = level %q answer %q", gotLevel, gotAnswer)
	}
}

func TestSubmitRejectsEmptyAnswer(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request should not reach the server")
	})
	if _, err := client.Submit(context.Background(), 2025, 3, 1, "  "); err == nil {
		t.Fatalf("expected error for empty answer")
	}
}
