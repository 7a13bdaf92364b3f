package domain

// Rich text span types.
const (
	RichTextTypeText     = "text"
	RichTextTypeMention  = "mention"
	RichTextTypeEquation = "equation"
)

// Annotations holds the inline styling flags for a rich text span.
type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

// Link is a URL attached to a text span.
type Link struct {
	URL string `json:"url"`
}

// TextData is the payload of a plain text span.
type TextData struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// MentionDate is the payload of a date mention.
type MentionDate struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// Mention is an inline reference embedded in rich text. Only the payload
// matching Type is populated.
type Mention struct {
	Type        string            `json:"type"`
	Date        *MentionDate      `json:"date,omitempty"`
	LinkPreview map[string]string `json:"link_preview,omitempty"`
}

// Equation is a LaTeX expression, used both for inline equation spans and
// for equation blocks.
type Equation struct {
	Expression string `json:"expression"`
}

// RichText is a single styled span of inline text. Spans are immutable
// once parsed; rendering never mutates them. PlainText always carries the
// span's visible text regardless of Type, so formatters need not inspect
// the typed payloads.
type RichText struct {
	Type        string      `json:"type"`
	Text        *TextData   `json:"text,omitempty"`
	Mention     *Mention    `json:"mention,omitempty"`
	Equation    *Equation   `json:"equation,omitempty"`
	Annotations Annotations `json:"annotations"`
	PlainText   string      `json:"plain_text"`
	Href        string      `json:"href,omitempty"`
}

// PlainText concatenates the plain text of every span in order, with no
// separator and no formatting applied.
func PlainText(spans []RichText) string {
	var out []byte
	for _, span := range spans {
		out = append(out, span.PlainText...)
	}
	return string(out)
}
