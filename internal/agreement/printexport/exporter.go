// internal/agreement/printexport/exporter.go

// Package printexport serializes a rendered agreement into a standalone
// printable HTML page: the document markup, the fixed legal stylesheet
// inlined, and an on-load print trigger. The page has no external resource
// dependencies, so it survives being handed to a fresh browsing context.
package printexport

import (
	"html"
	"strings"

	"agreement-workers/internal/models"
)

// Export produces the printable page for a rendered document. An empty or
// nil document yields an empty string: the caller must not open a blank
// print context for a document that never mounted.
func Export(doc *models.RenderedDocument, titleContext string) string {
	if doc.IsEmpty() {
		return ""
	}

	title := strings.TrimSpace(titleContext)
	if title == "" {
		title = doc.Title
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("<style>" + stylesheet + "</style>\n")
	b.WriteString("</head>\n<body onload=\"window.print()\">\n")

	b.WriteString("<h1>" + html.EscapeString(doc.Title) + "</h1>\n")
	if doc.Subtitle != "" {
		b.WriteString("<p class=\"subtitle\">" + html.EscapeString(doc.Subtitle) + "</p>\n")
	}
	if doc.ReferenceNumber != "" {
		b.WriteString("<p class=\"reference\">Ref. No. " + html.EscapeString(doc.ReferenceNumber) + "</p>\n")
	}

	for _, section := range doc.Sections {
		writeSection(&b, section)
	}

	writeSignatures(&b, doc.Signatures)

	if doc.Footnote != "" {
		b.WriteString("<p class=\"footnote\">" + html.EscapeString(doc.Footnote) + "</p>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeSection(b *strings.Builder, section models.Section) {
	b.WriteString("<h2>" + html.EscapeString(section.Heading) + "</h2>\n")

	for _, p := range section.Paragraphs {
		b.WriteString("<p>" + html.EscapeString(p) + "</p>\n")
	}

	if len(section.Rows) > 0 {
		b.WriteString("<table>\n")
		for _, row := range section.Rows {
			cls := ""
			if row.Emphasis {
				cls = " class=\"emphasis\""
			}
			b.WriteString("<tr" + cls + "><td class=\"label\">" + html.EscapeString(row.Label) +
				"</td><td>" + html.EscapeString(row.Value) + "</td></tr>\n")
		}
		b.WriteString("</table>\n")
	}

	if len(section.Clauses) > 0 {
		b.WriteString("<ol class=\"clauses\">\n")
		for _, clause := range section.Clauses {
			b.WriteString("<li>" + html.EscapeString(clause) + "</li>\n")
		}
		b.WriteString("</ol>\n")
	}
}

func writeSignatures(b *strings.Builder, blocks []models.SignatureBlock) {
	if len(blocks) == 0 {
		return
	}
	b.WriteString("<div class=\"signatures\">\n")
	for _, block := range blocks {
		b.WriteString("<div class=\"signature\"><div class=\"line\">" +
			html.EscapeString(block.Role) + ": " + html.EscapeString(block.Name) + "</div></div>\n")
	}
	b.WriteString("</div>\n")
}
