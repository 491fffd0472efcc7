package docs

import "testing"

func TestTopics(t *testing.T) {
	topics := Topics()
	if len(topics) == 0 {
		t.Fatalf("expected embedded topics")
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		seen[topic] = true
	}
	for _, want := range []string{"appearance", "text-size"} {
		if !seen[want] {
			t.Fatalf("missing topic %q in %v", want, topics)
		}
	}
}

func TestGet(t *testing.T) {
	body, ok := Get("appearance")
	if !ok || body == "" {
		t.Fatalf("expected appearance topic body")
	}
	if _, ok := Get("APPEARANCE"); !ok {
		t.Fatalf("topic lookup should be case-insensitive")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("unknown topic should not resolve")
	}
	if _, ok := Get("  "); ok {
		t.Fatalf("blank topic should not resolve")
	}
}
