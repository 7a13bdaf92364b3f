package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notemill/notemill/internal/core/domain"
)

func TestWrapColor_DefaultUnchanged(t *testing.T) {
	assert.Equal(t, "plain", wrapColor("plain", domain.ColorDefault))
	assert.Equal(t, "plain", wrapColor("plain", ""))
}

func TestWrapColor_NonDefault(t *testing.T) {
	got := wrapColor("hot", domain.ColorRed)
	assert.Equal(t, `<Span color="red">hot</Span>`, got)
	assert.Equal(t, 1, strings.Count(got, "red"))
}

func TestMDXBlock_ParagraphColor(t *testing.T) {
	b := paragraph("tinted")
	b.Paragraph.Color = domain.ColorBlueBackground
	assert.Equal(t, "<Span color=\"blue_background\">tinted</Span>\n", MDXBlock(b, 0, 0))

	b.Paragraph.Color = domain.ColorDefault
	assert.Equal(t, "tinted\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_EmptyParagraph(t *testing.T) {
	assert.Equal(t, "\n", MDXBlock(paragraph(), 0, 0))
}

func TestMDXBlock_HeadingColor(t *testing.T) {
	b := domain.Block{ID: "h", Type: domain.BlockHeading2, Heading2: &domain.Heading{
		RichText: []domain.RichText{span("Title")},
		Color:    domain.ColorPurple,
	}}
	assert.Equal(t, "## <Span color=\"purple\">Title</Span>\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_ListItemsAndToDo(t *testing.T) {
	bullet := domain.Block{ID: "b", Type: domain.BlockBulletedListItem, BulletedListItem: textContent("item")}
	numbered := domain.Block{ID: "n", Type: domain.BlockNumberedListItem, NumberedListItem: textContent("item")}
	todo := domain.Block{ID: "t", Type: domain.BlockToDo, ToDo: &domain.ToDo{
		RichText: []domain.RichText{span("task")},
		Checked:  true,
		Color:    domain.ColorGreen,
	}}

	assert.Equal(t, "- item\n", MDXBlock(bullet, 0, 0))
	assert.Equal(t, "2. item\n", MDXBlock(numbered, 0, 2))
	assert.Equal(t, "- [x] <Span color=\"green\">task</Span>\n", MDXBlock(todo, 0, 0))
}

func TestMDXBlock_Toggle(t *testing.T) {
	b := domain.Block{ID: "g", Type: domain.BlockToggle, Toggle: textContent("More")}
	assert.Equal(t, "<Accordion title=\"More\" color=\"default\">\n</Accordion>\n", MDXBlock(b, 0, 0))

	b.Toggle.Color = domain.ColorYellow
	assert.Equal(t, "<Accordion title=\"More\" color=\"yellow\">\n</Accordion>\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_QuoteColorPolicy(t *testing.T) {
	b := domain.Block{ID: "q", Type: domain.BlockQuote, Quote: textContent("wise words")}

	// Default colour falls back to blockquote prefixing.
	assert.Equal(t, "> wise words\n", MDXBlock(b, 0, 0))

	b.Quote.Color = domain.ColorGray
	assert.Equal(t, "<Quote color=\"gray\">wise words</Quote>\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_Callout(t *testing.T) {
	b := domain.Block{ID: "o", Type: domain.BlockCallout, Callout: &domain.Callout{
		RichText: []domain.RichText{span("note")},
		Icon:     &domain.Icon{Type: "emoji", Emoji: "💡"},
		Color:    domain.ColorDefault,
	}}

	assert.Equal(t, "<Callout icon=\"💡\" color=\"default\">\n  note\n</Callout>\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_Equation(t *testing.T) {
	b := domain.Block{ID: "e", Type: domain.BlockEquation, Equation: &domain.Equation{Expression: "e=mc^2"}}
	assert.Equal(t, "<Math>e=mc^2</Math>\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_Image(t *testing.T) {
	b := domain.Block{ID: "i", Type: domain.BlockImage, Image: &domain.FileObject{
		Type:     "external",
		External: &domain.ExternalFile{URL: "u"},
		Caption:  []domain.RichText{span("a cat")},
	}}
	assert.Equal(t, "<Image src=\"u\" alt=\"a cat\" />\n", MDXBlock(b, 0, 0))

	// Alt is omitted entirely when there is no caption.
	b.Image.Caption = nil
	assert.Equal(t, "<Image src=\"u\" />\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_MediaComponents(t *testing.T) {
	file := &domain.FileObject{Type: "external", External: &domain.ExternalFile{URL: "u"}}

	tests := []struct {
		name  string
		block domain.Block
		want  string
	}{
		{"video", domain.Block{ID: "v", Type: domain.BlockVideo, Video: file}, "<Video src=\"u\" />\n"},
		{"audio", domain.Block{ID: "a", Type: domain.BlockAudio, Audio: file}, "<Audio src=\"u\" />\n"},
		{"pdf", domain.Block{ID: "p", Type: domain.BlockPDF, PDF: file}, "<PDF src=\"u\" />\n"},
		{"file", domain.Block{ID: "f", Type: domain.BlockFile, File: &domain.FileObject{
			Type: "external", External: &domain.ExternalFile{URL: "u"}, Name: "report.csv",
		}}, "<FileDownload href=\"u\" name=\"report.csv\" />\n"},
		{"embed", domain.Block{ID: "e", Type: domain.BlockEmbed, Embed: &domain.URLPayload{URL: "u"}}, "<Embed url=\"u\" />\n"},
		{"link_preview", domain.Block{ID: "l", Type: domain.BlockLinkPreview, LinkPreview: &domain.URLPayload{URL: "u"}}, "<LinkPreview url=\"u\" />\n"},
		{"bookmark", domain.Block{ID: "m", Type: domain.BlockBookmark, BookmarkContent: &domain.Bookmark{
			URL: "u", Caption: []domain.RichText{span("t")},
		}}, "<Bookmark url=\"u\" title=\"t\" />\n"},
		{"child_page", domain.Block{ID: "c", Type: domain.BlockChildPage, ChildPage: &domain.ChildTitle{Title: "Sub"}}, "<ChildPage title=\"Sub\" />\n"},
		{"child_database", domain.Block{ID: "c", Type: domain.BlockChildDatabase, ChildDatabase: &domain.ChildTitle{Title: "Rows"}}, "<ChildDatabase title=\"Rows\" />\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MDXBlock(tt.block, 0, 0))
		})
	}
}

func TestMDXBlock_TableOfContents(t *testing.T) {
	b := domain.Block{ID: "t", Type: domain.BlockTableOfContents, TOC: &domain.TableOfContents{}}
	assert.Equal(t, "<TableOfContents />\n", MDXBlock(b, 0, 0))

	b.TOC.Color = domain.ColorOrange
	assert.Equal(t, "<TableOfContents color=\"orange\" />\n", MDXBlock(b, 0, 0))
}

// The divider is dialect-independent.
func TestMDXBlock_Divider(t *testing.T) {
	b := domain.Block{ID: "d", Type: domain.BlockDivider, Divider: &domain.Empty{}}
	assert.Equal(t, "---\n", MDXBlock(b, 0, 0))
}

func TestMDXBlock_TableRowMatchesMarkdown(t *testing.T) {
	b := domain.Block{ID: "r", Type: domain.BlockTableRow, TableRowContent: &domain.TableRow{
		Cells: [][]domain.RichText{{span("c1")}, {span("c2")}},
	}}
	assert.Equal(t, MarkdownBlock(b, 0, 0), MDXBlock(b, 0, 0))
}

func TestMDXBlock_EmptyVariants(t *testing.T) {
	empties := []domain.Block{
		{ID: "x", Type: domain.BlockBreadcrumb, Breadcrumb: &domain.Empty{}},
		{ID: "x", Type: domain.BlockColumnList, ColumnList: &domain.Empty{}},
		{ID: "x", Type: domain.BlockColumn, Column: &domain.Empty{}},
		{ID: "x", Type: domain.BlockTable, TableContent: &domain.Table{TableWidth: 2}},
		{ID: "x", Type: domain.BlockUnsupported},
	}

	for _, b := range empties {
		assert.Empty(t, MDXBlock(b, 0, 0), "type %s", b.Type)
	}
}
