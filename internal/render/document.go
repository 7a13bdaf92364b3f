package render

import (
	"strings"

	"github.com/notemill/notemill/internal/core/domain"
)

// blockFunc renders one block in a fixed dialect.
type blockFunc func(block domain.Block, indent, number int) string

// assemble walks the flat block sequence in source order, maintaining the
// numbered-list run counter across siblings: consecutive numbered_list_item
// blocks count 1, 2, 3, ... and any other variant resets the next run to
// start at 1 again. Fragments are concatenated with no added separators;
// each fragment's trailing newline is the only spacing mechanism.
func assemble(blocks []domain.Block, renderBlock blockFunc) string {
	var sb strings.Builder
	counter := 0

	for _, block := range blocks {
		if block.Type == domain.BlockNumberedListItem {
			counter++
		} else {
			counter = 0
		}
		sb.WriteString(renderBlock(block, 0, counter))
	}

	return sb.String()
}

// Markdown renders the block sequence to plain Markdown.
func Markdown(blocks []domain.Block) string {
	return assemble(blocks, MarkdownBlock)
}

// MDX renders the block sequence to the MDX markup dialect.
func MDX(blocks []domain.Block) string {
	return assemble(blocks, MDXBlock)
}
