package docs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
)

func TestAllTopicsAreValidMarkdown(t *testing.T) {
	names, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error = %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no documentation topics embedded")
	}

	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			t.Errorf("Topic(%q) error = %v", name, err)
			continue
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(content), &buf); err != nil {
			t.Errorf("topic %q is not valid markdown: %v", name, err)
		}
		if !strings.HasPrefix(content, "# ") {
			t.Errorf("topic %q does not start with a level-one heading", name)
		}
	}
}

func TestReadmeMentionsEveryTopic(t *testing.T) {
	readme, err := Topic("readme")
	if err != nil {
		t.Fatalf("Topic(readme) error = %v", err)
	}
	names, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error = %v", err)
	}
	for _, name := range names {
		if name == "readme" {
			continue
		}
		if !strings.Contains(readme, name) {
			t.Errorf("readme does not mention topic %q", name)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("Topic() of an unknown name did not fail")
	}
}

func TestWildcardTopic(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*) error = %v", err)
	}
	names, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error = %v", err)
	}
	for _, name := range names {
		single, err := Topic(name)
		if err != nil {
			t.Fatalf("Topic(%q) error = %v", name, err)
		}
		if !strings.Contains(all, single) {
			t.Errorf("Topic(*) does not include topic %q", name)
		}
	}
}
