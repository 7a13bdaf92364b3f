package render

import (
	"fmt"

	"github.com/notemill/notemill/internal/core/domain"
)

// wrapColor wraps text in a colour Span component. The default colour
// returns the text unchanged, so uncoloured documents stay plain Markdown.
func wrapColor(text string, color domain.Color) string {
	if color.IsDefault() {
		return text
	}
	return `<Span color="` + color.String() + `">` + text + `</Span>`
}

// MDXBlock renders one block to the MDX markup dialect. It mirrors
// MarkdownBlock but swaps component tags in for the shapes plain Markdown
// cannot decorate, and applies the colour-wrap policy to text-bearing
// variants. Numbered-list numbering and the table/column/breadcrumb
// behaviour are identical to the Markdown renderer.
func MDXBlock(block domain.Block, indent, number int) string {
	pad := indentFor(indent)

	switch block.Type {
	case domain.BlockParagraph:
		text := RichText(block.Paragraph.RichText)
		if text == "" {
			return "\n"
		}
		return pad + wrapColor(text, block.Paragraph.Color) + "\n"

	case domain.BlockHeading1:
		return "# " + wrapColor(RichText(block.Heading1.RichText), block.Heading1.Color) + "\n"

	case domain.BlockHeading2:
		return "## " + wrapColor(RichText(block.Heading2.RichText), block.Heading2.Color) + "\n"

	case domain.BlockHeading3:
		return "### " + wrapColor(RichText(block.Heading3.RichText), block.Heading3.Color) + "\n"

	case domain.BlockBulletedListItem:
		text := wrapColor(RichText(block.BulletedListItem.RichText), block.BulletedListItem.Color)
		return pad + "- " + text + "\n"

	case domain.BlockNumberedListItem:
		if number < 1 {
			number = 1
		}
		text := wrapColor(RichText(block.NumberedListItem.RichText), block.NumberedListItem.Color)
		return fmt.Sprintf("%s%d. %s\n", pad, number, text)

	case domain.BlockToDo:
		text := wrapColor(RichText(block.ToDo.RichText), block.ToDo.Color)
		return pad + "- " + checkbox(block.ToDo.Checked) + " " + text + "\n"

	case domain.BlockToggle:
		text := RichText(block.Toggle.RichText)
		return `<Accordion title="` + text + `" color="` + block.Toggle.Color.String() + "\">\n</Accordion>\n"

	case domain.BlockCode:
		text := domain.PlainText(block.Code.RichText)
		return "```" + block.Code.Language + "\n" + text + "\n```\n"

	case domain.BlockQuote:
		text := RichText(block.Quote.RichText)
		if !block.Quote.Color.IsDefault() {
			return `<Quote color="` + block.Quote.Color.String() + `">` + text + "</Quote>\n"
		}
		return quotePrefix(text) + "\n"

	case domain.BlockCallout:
		icon := ""
		if block.Callout.Icon != nil {
			icon = block.Callout.Icon.Emoji
		}
		text := RichText(block.Callout.RichText)
		return `<Callout icon="` + icon + `" color="` + block.Callout.Color.String() + "\">\n  " + text + "\n</Callout>\n"

	case domain.BlockDivider:
		return "---\n"

	case domain.BlockEquation:
		return "<Math>" + block.Equation.Expression + "</Math>\n"

	case domain.BlockImage:
		url := block.Image.URL()
		if len(block.Image.Caption) > 0 {
			return `<Image src="` + url + `" alt="` + RichText(block.Image.Caption) + "\" />\n"
		}
		return `<Image src="` + url + "\" />\n"

	case domain.BlockVideo:
		return `<Video src="` + block.Video.URL() + "\" />\n"

	case domain.BlockAudio:
		return `<Audio src="` + block.Audio.URL() + "\" />\n"

	case domain.BlockFile:
		name := block.File.Name
		if name == "" {
			name = "file"
		}
		return `<FileDownload href="` + block.File.URL() + `" name="` + name + "\" />\n"

	case domain.BlockPDF:
		return `<PDF src="` + block.PDF.URL() + "\" />\n"

	case domain.BlockBookmark:
		title := block.BookmarkContent.URL
		if len(block.BookmarkContent.Caption) > 0 {
			title = RichText(block.BookmarkContent.Caption)
		}
		return `<Bookmark url="` + block.BookmarkContent.URL + `" title="` + title + "\" />\n"

	case domain.BlockEmbed:
		return `<Embed url="` + block.Embed.URL + "\" />\n"

	case domain.BlockLinkPreview:
		return `<LinkPreview url="` + block.LinkPreview.URL + "\" />\n"

	case domain.BlockChildPage:
		return `<ChildPage title="` + block.ChildPage.Title + "\" />\n"

	case domain.BlockChildDatabase:
		return `<ChildDatabase title="` + block.ChildDatabase.Title + "\" />\n"

	case domain.BlockTableOfContents:
		if !block.TOC.Color.IsDefault() {
			return `<TableOfContents color="` + block.TOC.Color.String() + "\" />\n"
		}
		return "<TableOfContents />\n"

	case domain.BlockTableRow:
		// Same pipe-delimited row as the Markdown dialect.
		return MarkdownBlock(block, indent, number)

	case domain.BlockBreadcrumb, domain.BlockColumnList, domain.BlockColumn, domain.BlockTable:
		return ""

	case domain.BlockUnsupported:
		return ""
	}

	return ""
}
