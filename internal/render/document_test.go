package render

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notemill/notemill/internal/core/domain"
)

func numberedItem(text string) domain.Block {
	return domain.Block{ID: "n", Type: domain.BlockNumberedListItem, NumberedListItem: textContent(text)}
}

func TestMarkdown_SingleParagraph(t *testing.T) {
	assert.Equal(t, "Hello\n", Markdown([]domain.Block{paragraph("Hello")}))
}

func TestMarkdown_NumberedRun(t *testing.T) {
	blocks := []domain.Block{numberedItem("a"), numberedItem("b")}
	assert.Equal(t, "1. a\n2. b\n", Markdown(blocks))
}

func TestMarkdown_NumberedRunResets(t *testing.T) {
	blocks := []domain.Block{
		numberedItem("a"),
		numberedItem("b"),
		paragraph("break"),
		numberedItem("c"),
		numberedItem("d"),
		numberedItem("e"),
	}

	want := "1. a\n2. b\nbreak\n1. c\n2. d\n3. e\n"
	assert.Equal(t, want, Markdown(blocks))
}

func TestMarkdown_ResetOnUnsupported(t *testing.T) {
	// Even a variant that renders nothing breaks a numbered run.
	blocks := []domain.Block{
		numberedItem("a"),
		{ID: "x", Type: domain.BlockUnsupported},
		numberedItem("b"),
	}
	assert.Equal(t, "1. a\n1. b\n", Markdown(blocks))
}

func TestMarkdown_NoAddedSeparators(t *testing.T) {
	blocks := []domain.Block{
		paragraph("one"),
		paragraph("two"),
		{ID: "d", Type: domain.BlockDivider, Divider: &domain.Empty{}},
	}
	assert.Equal(t, "one\ntwo\n---\n", Markdown(blocks))
}

func TestMarkdown_EmptySequence(t *testing.T) {
	assert.Equal(t, "", Markdown(nil))
	assert.Equal(t, "", MDX(nil))
}

func TestMDX_NumberedRunMatchesMarkdown(t *testing.T) {
	blocks := []domain.Block{
		numberedItem("a"),
		numberedItem("b"),
		{ID: "d", Type: domain.BlockDivider, Divider: &domain.Empty{}},
		numberedItem("c"),
	}
	assert.Equal(t, "1. a\n2. b\n---\n1. c\n", MDX(blocks))
}

// Rendering is pure: repeated and concurrent calls over the same input
// produce identical output.
func TestRender_Deterministic(t *testing.T) {
	blocks := []domain.Block{
		paragraph("Hello"),
		numberedItem("a"),
		numberedItem("b"),
		{ID: "d", Type: domain.BlockDivider, Divider: &domain.Empty{}},
	}

	first := Markdown(blocks)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Markdown(blocks))
	}

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = MDX(blocks)
		}(i)
	}
	wg.Wait()

	for _, got := range results[1:] {
		assert.Equal(t, results[0], got)
	}
}

func TestRender_EndToEndScenarios(t *testing.T) {
	todo := domain.Block{ID: "t", Type: domain.BlockToDo, ToDo: &domain.ToDo{
		RichText: []domain.RichText{span("done")},
		Checked:  true,
	}}
	heading := domain.Block{ID: "h", Type: domain.BlockHeading1, Heading1: &domain.Heading{
		RichText: []domain.RichText{span("Title")},
	}}
	callout := domain.Block{ID: "o", Type: domain.BlockCallout, Callout: &domain.Callout{
		RichText: []domain.RichText{span("note")},
		Icon:     &domain.Icon{Type: "emoji", Emoji: "💡"},
	}}

	assert.Equal(t, "# Title\n", Markdown([]domain.Block{heading}))
	assert.Equal(t, "- [x] done\n", Markdown([]domain.Block{todo}))
	assert.Equal(t, "<Callout icon=\"💡\" color=\"default\">\n  note\n</Callout>\n", MDX([]domain.Block{callout}))
}
