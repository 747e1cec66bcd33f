package docconv

import (
	"strings"
	"testing"
)

func TestCapabilitiesDefault(t *testing.T) {
	e := New()

	caps := e.Capabilities()
	for _, name := range backendOrder {
		if !caps[name] {
			t.Errorf("backend %s should be available by default", name)
		}
	}
}

func TestCapabilitiesReflectLiveTable(t *testing.T) {
	e := New(WithMarkupRenderer(nil), WithDocWriter(nil))

	caps := e.Capabilities()
	if caps[BackendMarkdown] || caps[BackendDocxWriter] {
		t.Error("removed backends still reported available")
	}
	if !caps[BackendPDFWriter] {
		t.Error("untouched backend reported unavailable")
	}
}

func TestUnavailableBackendErrors(t *testing.T) {
	tests := []struct {
		name    string
		engine  *Engine
		req     Request
		backend string
	}{
		{
			"markdown renderer",
			New(WithMarkupRenderer(nil)),
			Request{Content: "# hi", InputFormat: "md", OutputFormat: "html"},
			BackendMarkdown,
		},
		{
			"text extractor for html to txt",
			New(WithTextExtractor(nil)),
			Request{Content: "<p>hi</p>", InputFormat: "html", OutputFormat: "txt"},
			BackendHTMLText,
		},
		{
			"text extractor for html to md",
			New(WithTextExtractor(nil)),
			Request{Content: "<p>hi</p>", InputFormat: "html", OutputFormat: "md"},
			BackendHTMLText,
		},
		{
			"docx reader",
			New(WithDocReader(nil)),
			Request{Content: "aGVsbG8=", InputFormat: "docx", OutputFormat: "txt"},
			BackendDocxReader,
		},
		{
			"docx writer",
			New(WithDocWriter(nil)),
			Request{Content: "hi", InputFormat: "txt", OutputFormat: "docx"},
			BackendDocxWriter,
		},
		{
			"pdf writer",
			New(WithPDFWriter(nil)),
			Request{Content: "hi", InputFormat: "txt", OutputFormat: "pdf"},
			BackendPDFWriter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.engine.Convert(tt.req)
			if !IsBackendUnavailable(err) {
				t.Fatalf("want BackendUnavailableError, got %v", err)
			}
			got := tt.engine.ConvertDocument(tt.req)
			if !strings.HasPrefix(got, "Error: ") || !strings.Contains(got, tt.backend) {
				t.Errorf("error string does not name backend %s: %q", tt.backend, got)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	e := New()
	report := e.FormatReport()

	for _, want := range []string{
		"Input Formats: txt, md, html, docx, pdf, rtf",
		"Output Formats: txt, md, html, docx, pdf, rtf",
		"base64",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	for _, name := range backendOrder {
		if !strings.Contains(report, name+": ✓ Available") {
			t.Errorf("report missing availability line for %s", name)
		}
	}

	degraded := New(WithPDFWriter(nil)).FormatReport()
	if !strings.Contains(degraded, BackendPDFWriter+": ✗ Not available") {
		t.Errorf("degraded report does not flag missing pdf writer:\n%s", degraded)
	}
}
