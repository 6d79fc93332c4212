package ingest

import (
	"strings"
	"testing"
)

func TestStripHTMLBasic(t *testing.T) {
	in := `<html><head><title>x</title><style>p{color:red}</style></head>
<body><h1>Notes</h1><p>First paragraph.</p><p>Second one.</p></body></html>`

	out, err := StripHTML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}

	if !strings.Contains(out, "Notes") {
		t.Errorf("Heading text missing: %q", out)
	}
	if !strings.Contains(out, "First paragraph.") || !strings.Contains(out, "Second one.") {
		t.Errorf("Paragraph text missing: %q", out)
	}
	if strings.Contains(out, "color:red") {
		t.Errorf("Style content should be dropped: %q", out)
	}
	if !strings.Contains(out, "\n") {
		t.Error("Block boundaries should become newlines")
	}
}

func TestStripHTMLListItems(t *testing.T) {
	in := `<ul><li>buy milk</li><li>call mom</li></ul>`

	out, err := StripHTML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}

	if !strings.Contains(out, "- buy milk") || !strings.Contains(out, "- call mom") {
		t.Errorf("List items should become bullet lines: %q", out)
	}
}

func TestStripHTMLScriptDropped(t *testing.T) {
	in := `<p>keep</p><script>alert("drop")</script>`

	out, err := StripHTML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}
	if strings.Contains(out, "alert") {
		t.Errorf("Script content should be dropped: %q", out)
	}
	if !strings.Contains(out, "keep") {
		t.Errorf("Body text should survive: %q", out)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	if !LooksLikeHTML("<html><body>hi</body></html>") {
		t.Error("Markup should be detected")
	}
	if !LooksLikeHTML("  <div>hi</div>") {
		t.Error("Leading whitespace should not hide markup")
	}
	if LooksLikeHTML("plain text with < and > later on") {
		// "<" not at the start
		t.Error("Plain text should not sniff as markup")
	}
	if LooksLikeHTML("- a\n- b") {
		t.Error("A list is not markup")
	}
}
