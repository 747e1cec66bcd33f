// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package docconv converts documents between a fixed set of text and binary
// formats (txt, md, html, docx, pdf, rtf). All inputs are reduced to a tagged
// plain-text intermediate before being rendered to the requested output.
package docconv

import (
	"errors"
	"net/http"
)

// Request describes a single document conversion. Content carries raw text,
// or base64-encoded bytes when InputFormat is a binary format.
type Request struct {
	Content      string `json:"content"`
	InputFormat  string `json:"input_format"`
	OutputFormat string `json:"output_format"`
	Filename     string `json:"filename,omitempty"`
}

// Engine is the document conversion engine. The zero value is not usable;
// construct one with New.
type Engine struct {
	backends Backends
	client   *http.Client
}

// New creates an Engine with all built-in backends wired. Options can replace
// or remove individual backends.
func New(opts ...Option) *Engine {
	e := &Engine{
		backends: Backends{
			Markup:    newGoldmarkRenderer(),
			Extractor: htmlTextExtractor{},
			DocReader: ooxmlReader{},
			DocWriter: ooxmlWriter{},
			PDFWriter: fpdfWriter{},
		},
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Convert runs the full single-document pipeline: validate the format labels,
// build the intermediate value, render it to the output format. Binary
// outputs (pdf, docx) are returned base64-encoded. Errors are typed per the
// taxonomy in errors.go and never panic.
func (e *Engine) Convert(req Request) (string, error) {
	in, err := classifyInput(req.InputFormat)
	if err != nil {
		return "", err
	}
	out, err := classifyOutput(req.OutputFormat)
	if err != nil {
		return "", err
	}

	ir, err := e.buildIR(in, req.Content)
	if err != nil {
		return "", err
	}
	return e.render(out, ir)
}

// ConvertDocument is the tool-call boundary around Convert. Every pipeline
// error is folded into an error-shaped string result so a failed document can
// never fault a batch or a serving process.
func (e *Engine) ConvertDocument(req Request) string {
	result, err := e.Convert(req)
	if err != nil {
		return errorString(err)
	}
	return result
}

// errorString renders a pipeline error in the wire shape callers expect:
// "Error: ..." for request-level faults, "Error during conversion: ..." for
// faults surfaced by a backend.
func errorString(err error) string {
	var (
		invalid     *InvalidFormatError
		malformed   *MalformedPayloadError
		unavailable *BackendUnavailableError
		unsupported *UnsupportedOperationError
	)
	if errors.As(err, &invalid) || errors.As(err, &malformed) ||
		errors.As(err, &unavailable) || errors.As(err, &unsupported) {
		return "Error: " + err.Error()
	}
	return "Error during conversion: " + err.Error()
}
