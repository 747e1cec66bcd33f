package docconv

import (
	"encoding/base64"
	"strings"
	"testing"
)

func convert(t *testing.T, e *Engine, content, in, out string) string {
	t.Helper()
	result, err := e.Convert(Request{Content: content, InputFormat: in, OutputFormat: out})
	if err != nil {
		t.Fatalf("Convert(%s->%s): %v", in, out, err)
	}
	return result
}

func TestTextToMarkdownHeuristics(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"all caps becomes level-1 heading", "HELLO WORLD", "# Hello World"},
		{"trailing colon becomes level-2 heading", "Section:", "## Section"},
		{"short caps line passes through", "ABC", "ABC"},
		{"regular line passes through", "just a line", "just a line"},
		{"blank lines preserved", "INTRO\n\nbody", "# Intro\n\nbody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convert(t, e, tt.in, "txt", "md")
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	e := New()

	// Plain text with no all-caps lines and no trailing colons survives
	// txt -> md -> txt unchanged.
	text := "Plain text body.\n\nAnother paragraph here."
	md := convert(t, e, text, "txt", "md")
	back := convert(t, e, md, "md", "txt")
	if back != text {
		t.Errorf("round trip changed text: %q -> %q", text, back)
	}
}

func TestMarkdownInputIsNotRePromoted(t *testing.T) {
	e := New()

	// The heading heuristics apply to text-kind IR only; markdown input
	// passes through, so an existing heading is never double-prefixed.
	got := convert(t, e, "# TITLE", "md", "md")
	if got != "# TITLE" {
		t.Errorf("markdown passthrough changed content: %q", got)
	}
}

func TestMarkdownToTextStripsMarkup(t *testing.T) {
	e := New()

	got := convert(t, e, "# Title\n\n*bold* and _em_", "md", "txt")
	for _, ch := range []string{"#", "*", "_"} {
		if strings.Contains(got, ch) {
			t.Errorf("output still contains %q: %q", ch, got)
		}
	}
}

func TestHTMLToText(t *testing.T) {
	e := New()

	got := convert(t, e, "<html><head><style>p{}</style></head><body><h1>Title</h1><p>Hello <b>world</b></p></body></html>", "html", "txt")
	if !strings.Contains(got, "Title") || !strings.Contains(got, "world") {
		t.Errorf("extracted text missing content: %q", got)
	}
	if strings.Contains(got, "p{}") {
		t.Errorf("style content leaked into text: %q", got)
	}
}

func TestTextToHTML(t *testing.T) {
	e := New()

	got := convert(t, e, "a < b\nsecond line\n\n& more", "txt", "html")
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<p>a &lt; b<br>second line</p>",
		"<p>&amp; more</p>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownToHTML(t *testing.T) {
	e := New()

	got := convert(t, e, "# Hello\n\nSome *text*.", "md", "html")
	for _, want := range []string{"<!DOCTYPE html>", "<h1>Hello</h1>", "<em>text</em>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTextToPDF(t *testing.T) {
	e := New()

	got := convert(t, e, "REPORT TITLE\n\nA body paragraph long enough not to be a heading at all, clearly.", "txt", "pdf")
	data, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("PDF output is not base64: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("decoded output is not a PDF (got prefix %q)", string(data[:4]))
	}
}

func TestTextToDocxAndBack(t *testing.T) {
	e := New()

	got := convert(t, e, "REPORT TITLE\n\nA body paragraph long enough not to be a heading at all, clearly.", "txt", "docx")
	data, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("DOCX output is not base64: %v", err)
	}
	if !strings.HasPrefix(string(data), "PK") {
		t.Errorf("decoded output is not a ZIP package")
	}

	// The written package must feed back through the docx read path.
	text := convert(t, e, got, "docx", "txt")
	if !strings.Contains(text, "REPORT TITLE") || !strings.Contains(text, "body paragraph") {
		t.Errorf("docx round trip lost content: %q", text)
	}
}

func TestClassifierRejectsUnknownFormats(t *testing.T) {
	e := New()

	got := e.ConvertDocument(Request{Content: "x", InputFormat: "xyz", OutputFormat: "txt"})
	if !strings.HasPrefix(got, "Error: Unsupported input format 'xyz'") {
		t.Errorf("unexpected rejection: %q", got)
	}
	if !strings.Contains(got, strings.Join(InputFormats, ", ")) {
		t.Errorf("rejection does not list the supported set: %q", got)
	}

	got = e.ConvertDocument(Request{Content: "x", InputFormat: "txt", OutputFormat: "nope"})
	if !strings.HasPrefix(got, "Error: Unsupported output format 'nope'") {
		t.Errorf("unexpected rejection: %q", got)
	}
}

func TestClassifierNormalizesCase(t *testing.T) {
	e := New()

	got := e.ConvertDocument(Request{Content: "HELLO WORLD", InputFormat: " TXT ", OutputFormat: "MD"})
	if got != "# Hello World" {
		t.Errorf("case-insensitive formats not accepted: %q", got)
	}
}

func TestPDFInputAlwaysRejected(t *testing.T) {
	e := New()

	for _, content := range []string{"anything", base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))} {
		got := e.ConvertDocument(Request{Content: content, InputFormat: "pdf", OutputFormat: "txt"})
		if !strings.Contains(got, "not yet implemented") {
			t.Errorf("PDF input not rejected with fixed error: %q", got)
		}
	}
}

func TestRTFHasNoConversionRule(t *testing.T) {
	e := New()

	got := e.ConvertDocument(Request{Content: "hi", InputFormat: "txt", OutputFormat: "rtf"})
	if got != "Error: Output format 'rtf' conversion not implemented" {
		t.Errorf("unexpected rtf output result: %q", got)
	}

	got = e.ConvertDocument(Request{Content: "hi", InputFormat: "rtf", OutputFormat: "txt"})
	if !strings.Contains(got, "not implemented") {
		t.Errorf("unexpected rtf input result: %q", got)
	}
}

func TestMalformedBase64Docx(t *testing.T) {
	e := New()

	got := e.ConvertDocument(Request{Content: "not-base64!!", InputFormat: "docx", OutputFormat: "txt"})
	if !strings.Contains(got, "base64") {
		t.Errorf("malformed payload error does not mention base64: %q", got)
	}
}

func TestConvertDocumentNeverPanics(t *testing.T) {
	e := New()

	for _, in := range InputFormats {
		for _, out := range OutputFormats {
			content := "SOME CONTENT\n\nwith a body."
			if isBinaryFormat(in) {
				content = base64.StdEncoding.EncodeToString([]byte("hello"))
			}
			got := e.ConvertDocument(Request{Content: content, InputFormat: in, OutputFormat: out})
			if got == "" {
				t.Errorf("%s -> %s returned empty string", in, out)
			}
		}
	}
}

func TestSegmentBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			"caps heading and body",
			"SHORT TITLE\n\nA body paragraph that is comfortably longer than fifty characters in total.",
			[]Block{
				{Text: "SHORT TITLE", Heading: true},
				{Text: "A body paragraph that is comfortably longer than fifty characters in total."},
			},
		},
		{
			"hash heading loses its marker",
			"# Marked Title\n\nbody",
			[]Block{
				{Text: "Marked Title", Heading: true},
				{Text: "body"},
			},
		},
		{
			"long caps paragraph is not a heading",
			strings.Repeat("CAPS ", 12),
			[]Block{{Text: strings.TrimSpace(strings.Repeat("CAPS ", 12))}},
		},
		{
			"blank paragraphs dropped",
			"one\n\n\n\ntwo",
			[]Block{{Text: "one"}, {Text: "two"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentBlocks(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d blocks, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("block %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
