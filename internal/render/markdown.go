package render

import (
	"fmt"
	"strings"

	"github.com/notemill/notemill/internal/core/domain"
)

// indentFor returns two spaces per nesting level.
func indentFor(level int) string {
	return strings.Repeat("  ", level)
}

// checkbox returns the task list marker for a to_do block.
func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// quotePrefix prefixes every line of text with "> ".
func quotePrefix(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// MarkdownBlock renders one block to a plain Markdown fragment. indent is
// the nesting level (two spaces each); number is the current numbered-list
// run counter and is only consulted for numbered_list_item blocks.
//
// Recognised shapes the dialect cannot express degrade to an empty string
// rather than failing: breadcrumb, column_list, column and table render
// nothing (their content lives in children, which this renderer does not
// recurse into), and Notion-hosted files render with an empty URL.
func MarkdownBlock(block domain.Block, indent, number int) string {
	pad := indentFor(indent)

	switch block.Type {
	case domain.BlockParagraph:
		text := RichText(block.Paragraph.RichText)
		if text == "" {
			return "\n"
		}
		return pad + text + "\n"

	case domain.BlockHeading1:
		return "# " + RichText(block.Heading1.RichText) + "\n"

	case domain.BlockHeading2:
		return "## " + RichText(block.Heading2.RichText) + "\n"

	case domain.BlockHeading3:
		return "### " + RichText(block.Heading3.RichText) + "\n"

	case domain.BlockBulletedListItem:
		return pad + "- " + RichText(block.BulletedListItem.RichText) + "\n"

	case domain.BlockNumberedListItem:
		if number < 1 {
			number = 1
		}
		return fmt.Sprintf("%s%d. %s\n", pad, number, RichText(block.NumberedListItem.RichText))

	case domain.BlockToDo:
		return pad + "- " + checkbox(block.ToDo.Checked) + " " + RichText(block.ToDo.RichText) + "\n"

	case domain.BlockToggle:
		text := RichText(block.Toggle.RichText)
		return pad + "<details>\n" + pad + "<summary>" + text + "</summary>\n" + pad + "</details>\n"

	case domain.BlockCode:
		// Code bodies stay raw: inline annotations inside a fence would
		// corrupt the listing.
		text := domain.PlainText(block.Code.RichText)
		return "```" + block.Code.Language + "\n" + text + "\n```\n"

	case domain.BlockQuote:
		return quotePrefix(RichText(block.Quote.RichText)) + "\n"

	case domain.BlockCallout:
		icon := ""
		if block.Callout.Icon != nil && block.Callout.Icon.Emoji != "" {
			icon = block.Callout.Icon.Emoji + " "
		}
		return "> " + icon + RichText(block.Callout.RichText) + "\n"

	case domain.BlockDivider:
		return "---\n"

	case domain.BlockEquation:
		return "$$\n" + block.Equation.Expression + "\n$$\n"

	case domain.BlockImage:
		caption := "image"
		if len(block.Image.Caption) > 0 {
			caption = RichText(block.Image.Caption)
		}
		return "![" + caption + "](" + block.Image.URL() + ")\n"

	case domain.BlockVideo:
		return "[Video](" + block.Video.URL() + ")\n"

	case domain.BlockAudio:
		return "[Audio](" + block.Audio.URL() + ")\n"

	case domain.BlockFile:
		name := block.File.Name
		if name == "" {
			name = "file"
		}
		return "[" + name + "](" + block.File.URL() + ")\n"

	case domain.BlockPDF:
		return "[PDF](" + block.PDF.URL() + ")\n"

	case domain.BlockBookmark:
		caption := block.BookmarkContent.URL
		if len(block.BookmarkContent.Caption) > 0 {
			caption = RichText(block.BookmarkContent.Caption)
		}
		return "[" + caption + "](" + block.BookmarkContent.URL + ")\n"

	case domain.BlockEmbed:
		return "[Embed](" + block.Embed.URL + ")\n"

	case domain.BlockLinkPreview:
		return "[Link](" + block.LinkPreview.URL + ")\n"

	case domain.BlockChildPage:
		return "📄 [" + block.ChildPage.Title + "]()\n"

	case domain.BlockChildDatabase:
		return "🗄️ [" + block.ChildDatabase.Title + "]()\n"

	case domain.BlockTableOfContents:
		return "[TOC]\n"

	case domain.BlockTableRow:
		cells := make([]string, 0, len(block.TableRowContent.Cells))
		for _, cell := range block.TableRowContent.Cells {
			cells = append(cells, RichText(cell))
		}
		return "| " + strings.Join(cells, " | ") + " |\n"

	case domain.BlockBreadcrumb, domain.BlockColumnList, domain.BlockColumn, domain.BlockTable:
		return ""

	case domain.BlockUnsupported:
		return ""
	}

	return ""
}
