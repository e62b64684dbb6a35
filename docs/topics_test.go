package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// The readme is the index: every topic it lists must load, and
	// every topic file must be listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md but not loadable: %v", topic, err)
		}
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
			}
		}
		if !found {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

func TestTopicsStartWithHeading(t *testing.T) {
	// every topic must open with a level-1 heading matching its name.
	all, err := AllTopics()
	if err != nil {
		t.Fatal(err)
	}
	md := goldmark.New()
	for _, topic := range all {
		content, err := Topic(topic)
		if err != nil {
			t.Fatal(err)
		}
		source := []byte(content)
		doc := md.Parser().Parse(text.NewReader(source))
		first := doc.FirstChild()
		h, ok := first.(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
			continue
		}
		title := string(h.Text(source))
		if topic != "readme" && title != topic {
			t.Errorf("topic %q heading is %q, want the topic name", topic, title)
		}
	}
}

func TestTopicsStar(t *testing.T) {
	out, err := Topics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# inv", "# storage", "# invoices", "# documents"} {
		if !strings.Contains(out, want) {
			t.Errorf("Topics(*) missing %q", want)
		}
	}
}
