package render

import (
	"strings"

	"github.com/notemill/notemill/internal/core/domain"
)

// RichText renders an ordered list of rich text spans to a single
// Markdown string. Spans are concatenated with no separator; each span's
// plain text already carries its original adjacency.
//
// Per span, markers compose innermost to outermost in a fixed order:
// code, bold, italic, strikethrough, then the hyperlink wrap. Code must
// be fenced before bold/italic so the asterisks land outside the
// backticks. Underline has no Markdown equivalent and is dropped. Colour
// is a renderer-level policy, not applied here.
func RichText(spans []domain.RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		text := span.PlainText

		if span.Annotations.Code {
			text = "`" + text + "`"
		}
		if span.Annotations.Bold {
			text = "**" + text + "**"
		}
		if span.Annotations.Italic {
			text = "*" + text + "*"
		}
		if span.Annotations.Strikethrough {
			text = "~~" + text + "~~"
		}

		if span.Href != "" {
			text = "[" + text + "](" + span.Href + ")"
		}

		sb.WriteString(text)
	}
	return sb.String()
}
