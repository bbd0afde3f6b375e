package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHTMLResult(t *testing.T) {
	var buf bytes.Buffer
	r := NewHTML(&buf)

	if err := r.Result("I sat on the bank", -1, tiedResult()); err != nil {
		t.Fatalf("Result: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<title>Word Sense Disambiguation</title>",
		`<link rel="stylesheet" href="bootstrap.min.css">`,
		`<p class="sentence">Sentence : I sat on the bank</p>`,
		`<p class="index">Index : -1</p>`,
		"Best Sense : sloping land\n\na financial institution</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}
}

func TestHTMLEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewHTML(&buf)

	if err := r.Error("<script>", 0, errors.New("bad & worse")); err != nil {
		t.Fatalf("Error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Errorf("sentence not escaped:\n%s", out)
	}
	if !strings.Contains(out, `<p class="error">Error : bad &amp; worse</p>`) {
		t.Errorf("expected escaped error paragraph in\n%s", out)
	}
	if strings.Contains(out, `class="sense"`) {
		t.Errorf("expected no sense paragraph on error")
	}
}

func TestHTMLForm(t *testing.T) {
	var buf bytes.Buffer
	r := NewHTML(&buf)
	r.Title = "WSD"

	if err := r.Form("default", -1); err != nil {
		t.Fatalf("Form: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<title>WSD</title>") || !strings.Contains(out, `name="sent" value="default"`) {
		t.Errorf("unexpected form page\n%s", out)
	}
	if strings.Contains(out, `class="sentence"`) {
		t.Errorf("expected no result on empty form")
	}
}
