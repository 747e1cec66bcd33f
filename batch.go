package docconv

import (
	"fmt"
	"strings"
)

// previewLen is the number of preview runes shown per successful item in the
// batch report.
const previewLen = 100

// BatchItem is one document in a batch conversion request.
type BatchItem struct {
	Content     string `json:"content"`
	InputFormat string `json:"input_format"`
	Filename    string `json:"filename,omitempty"`
}

// BatchItemResult is the per-item outcome. Exactly one of Content or Err is
// meaningful, selected by Status.
type BatchItemResult struct {
	Filename string
	Status   string // "success" or "error"
	Content  string
	Err      string
}

// ConvertBatch applies the single-document pipeline to each item in order,
// sharing one output format. One item's failure never aborts the batch or
// disturbs the other results; the returned slice always has one entry per
// input item, in input order.
func (e *Engine) ConvertBatch(items []BatchItem, outputFormat string) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(items))
	for i, item := range items {
		name := item.Filename
		if name == "" {
			name = fmt.Sprintf("file_%d", i+1)
		}
		inFormat := item.InputFormat
		if inFormat == "" {
			inFormat = FormatTxt
		}

		content, err := e.Convert(Request{
			Content:      item.Content,
			InputFormat:  inFormat,
			OutputFormat: outputFormat,
			Filename:     name,
		})
		if err != nil {
			results = append(results, BatchItemResult{
				Filename: name,
				Status:   "error",
				Err:      err.Error(),
			})
			continue
		}
		results = append(results, BatchItemResult{
			Filename: name,
			Status:   "success",
			Content:  content,
		})
	}
	return results
}

// BatchReport runs ConvertBatch and formats the outcome as a human-readable
// report: a header with item count and target format, then one block per item
// with a truncated content preview or the error message.
func (e *Engine) BatchReport(items []BatchItem, outputFormat string) string {
	results := e.ConvertBatch(items, outputFormat)

	var b strings.Builder
	fmt.Fprintf(&b, "Batch Conversion Results (%d files to %s)\n", len(items), outputFormat)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, r := range results {
		fmt.Fprintf(&b, "File: %s\n", r.Filename)
		fmt.Fprintf(&b, "Status: %s\n", r.Status)
		if r.Status == "error" {
			fmt.Fprintf(&b, "Error: %s\n", r.Err)
		} else {
			fmt.Fprintf(&b, "Content Preview: %s\n", preview(r.Content))
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}
	return b.String()
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLen {
		return s
	}
	return string(runes[:previewLen]) + "..."
}
