// Package revise rewrites the summary section of a DOCX resume and
// returns the revised document bytes.
package revise

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// summaryHeading marks the paragraph whose successor gets replaced.
const summaryHeading = "SUMMARY"

var textNodeRe = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Summary replaces the paragraph following the SUMMARY heading with the
// given text and returns the rewritten document. Documents without a
// summary section fail with an error; callers treat rewrite failure as a
// skipped enrichment, not a request failure.
func Summary(data []byte, summary string) ([]byte, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	edit := doc.Editable()
	current := paragraphAfterHeading(edit.GetContent(), summaryHeading)
	if current == "" {
		return nil, fmt.Errorf("no paragraph found after %q heading", summaryHeading)
	}

	if err := edit.Replace(current, xmlEscaper.Replace(summary), 1); err != nil {
		return nil, fmt.Errorf("failed to replace summary: %w", err)
	}

	var out bytes.Buffer
	if err := edit.Write(&out); err != nil {
		return nil, fmt.Errorf("failed to write revised docx: %w", err)
	}
	return out.Bytes(), nil
}

// paragraphAfterHeading scans the document XML's text nodes and returns
// the first non-empty run after the node that equals heading
// (case-insensitive, whitespace-trimmed). Empty string when not found.
func paragraphAfterHeading(content, heading string) string {
	nodes := textNodeRe.FindAllStringSubmatch(content, -1)

	headingSeen := false
	for _, node := range nodes {
		text := strings.TrimSpace(node[1])
		if headingSeen {
			if text != "" {
				return node[1]
			}
			continue
		}
		if strings.EqualFold(text, heading) {
			headingSeen = true
		}
	}
	return ""
}
