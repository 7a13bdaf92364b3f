package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// BlockType discriminates the variant of a Block. The set is closed:
// discriminators outside it are mapped to BlockUnsupported at parse time
// rather than rejected.
type BlockType string

// Block variants supported by the renderers.
const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockToDo             BlockType = "to_do"
	BlockToggle           BlockType = "toggle"
	BlockCode             BlockType = "code"
	BlockQuote            BlockType = "quote"
	BlockCallout          BlockType = "callout"
	BlockEquation         BlockType = "equation"
	BlockDivider          BlockType = "divider"
	BlockImage            BlockType = "image"
	BlockVideo            BlockType = "video"
	BlockAudio            BlockType = "audio"
	BlockFile             BlockType = "file"
	BlockPDF              BlockType = "pdf"
	BlockBookmark         BlockType = "bookmark"
	BlockEmbed            BlockType = "embed"
	BlockLinkPreview      BlockType = "link_preview"
	BlockChildPage        BlockType = "child_page"
	BlockChildDatabase    BlockType = "child_database"
	BlockTable            BlockType = "table"
	BlockTableRow         BlockType = "table_row"
	BlockColumnList       BlockType = "column_list"
	BlockColumn           BlockType = "column"
	BlockTableOfContents  BlockType = "table_of_contents"
	BlockBreadcrumb       BlockType = "breadcrumb"
	BlockUnsupported      BlockType = "unsupported"
)

// knownBlockTypes is the closed discriminator set. Membership determines
// whether a payload is required at parse time.
var knownBlockTypes = map[BlockType]bool{
	BlockParagraph:        true,
	BlockHeading1:         true,
	BlockHeading2:         true,
	BlockHeading3:         true,
	BlockBulletedListItem: true,
	BlockNumberedListItem: true,
	BlockToDo:             true,
	BlockToggle:           true,
	BlockCode:             true,
	BlockQuote:            true,
	BlockCallout:          true,
	BlockEquation:         true,
	BlockDivider:          true,
	BlockImage:            true,
	BlockVideo:            true,
	BlockAudio:            true,
	BlockFile:             true,
	BlockPDF:              true,
	BlockBookmark:         true,
	BlockEmbed:            true,
	BlockLinkPreview:      true,
	BlockChildPage:        true,
	BlockChildDatabase:    true,
	BlockTable:            true,
	BlockTableRow:         true,
	BlockColumnList:       true,
	BlockColumn:           true,
	BlockTableOfContents:  true,
	BlockBreadcrumb:       true,
	BlockUnsupported:      true,
}

// PartialUser is a user reference carried on block metadata.
type PartialUser struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id"`
}

// Parent locates a block's container. Metadata only: rendering never
// follows parent references.
type Parent struct {
	Type       string `json:"type"`
	PageID     string `json:"page_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// ExternalFile is a file hosted outside Notion.
type ExternalFile struct {
	URL string `json:"url"`
}

// FileObject backs the image, video, audio, file, and pdf variants.
// Notion-hosted files (type "file" or "file_upload") are not resolved;
// only External carries a usable URL.
type FileObject struct {
	Type     string        `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
	Caption  []RichText    `json:"caption,omitempty"`
	Name     string        `json:"name,omitempty"`
}

// URL returns the external URL, or the empty string when the file is
// Notion-hosted and cannot be rendered.
func (f *FileObject) URL() string {
	if f == nil || f.External == nil {
		return ""
	}
	return f.External.URL
}

// Icon is an emoji or file icon attached to a callout.
type Icon struct {
	Type     string        `json:"type"`
	Emoji    string        `json:"emoji,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
}

// RichTextContent is the shared payload shape for paragraph, list item,
// toggle, and quote blocks.
type RichTextContent struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
}

// Heading is the payload for heading_1/2/3 blocks.
type Heading struct {
	RichText     []RichText `json:"rich_text"`
	Color        Color      `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
}

// ToDo is the payload for to_do blocks.
type ToDo struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Checked  bool       `json:"checked"`
}

// Callout is the payload for callout blocks.
type Callout struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    Color      `json:"color,omitempty"`
}

// Code is the payload for code blocks. Language defaults to "plain text"
// when the API omits it.
type Code struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language,omitempty"`
}

// ChildTitle is the payload for child_page and child_database blocks.
type ChildTitle struct {
	Title string `json:"title"`
}

// URLPayload is the payload for embed and link_preview blocks.
type URLPayload struct {
	URL string `json:"url"`
}

// Bookmark is the payload for bookmark blocks.
type Bookmark struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

// TableOfContents is the payload for table_of_contents blocks.
type TableOfContents struct {
	Color Color `json:"color,omitempty"`
}

// Table is the payload for table blocks. Rows arrive as sibling
// table_row blocks.
type Table struct {
	TableWidth      int  `json:"table_width"`
	HasColumnHeader bool `json:"has_column_header"`
	HasRowHeader    bool `json:"has_row_header"`
}

// TableRow is the payload for table_row blocks.
type TableRow struct {
	Cells [][]RichText `json:"cells"`
}

// Empty is the payload for variants that carry no content of their own:
// divider, breadcrumb, column_list, and column.
type Empty struct{}

// Block is one node in a page's flattened content tree. Exactly one
// payload pointer is populated, matching Type. Blocks are parsed once
// and read-only afterwards.
//
// Nested content is out of scope: the Notion API reports HasChildren but
// this model is flat-only; callers wanting nested blocks must pre-flatten.
type Block struct {
	Object         string      `json:"object,omitempty"`
	ID             string      `json:"id"`
	Type           BlockType   `json:"type"`
	Parent         Parent      `json:"parent"`
	CreatedTime    time.Time   `json:"created_time"`
	LastEditedTime time.Time   `json:"last_edited_time"`
	CreatedBy      PartialUser `json:"created_by"`
	LastEditedBy   PartialUser `json:"last_edited_by"`
	HasChildren    bool        `json:"has_children"`
	Archived       bool        `json:"archived"`
	InTrash        bool        `json:"in_trash"`

	Paragraph        *RichTextContent `json:"paragraph,omitempty"`
	Heading1         *Heading         `json:"heading_1,omitempty"`
	Heading2         *Heading         `json:"heading_2,omitempty"`
	Heading3         *Heading         `json:"heading_3,omitempty"`
	BulletedListItem *RichTextContent `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextContent `json:"numbered_list_item,omitempty"`
	ToDo             *ToDo            `json:"to_do,omitempty"`
	Toggle           *RichTextContent `json:"toggle,omitempty"`
	Code             *Code            `json:"code,omitempty"`
	Quote            *RichTextContent `json:"quote,omitempty"`
	Callout          *Callout         `json:"callout,omitempty"`
	Equation         *Equation        `json:"equation,omitempty"`
	Divider          *Empty           `json:"divider,omitempty"`
	Image            *FileObject      `json:"image,omitempty"`
	Video            *FileObject      `json:"video,omitempty"`
	Audio            *FileObject      `json:"audio,omitempty"`
	File             *FileObject      `json:"file,omitempty"`
	PDF              *FileObject      `json:"pdf,omitempty"`
	BookmarkContent  *Bookmark        `json:"bookmark,omitempty"`
	Embed            *URLPayload      `json:"embed,omitempty"`
	LinkPreview      *URLPayload      `json:"link_preview,omitempty"`
	ChildPage        *ChildTitle      `json:"child_page,omitempty"`
	ChildDatabase    *ChildTitle      `json:"child_database,omitempty"`
	TableContent     *Table           `json:"table,omitempty"`
	TableRowContent  *TableRow        `json:"table_row,omitempty"`
	ColumnList       *Empty           `json:"column_list,omitempty"`
	Column           *Empty           `json:"column,omitempty"`
	TOC              *TableOfContents `json:"table_of_contents,omitempty"`
	Breadcrumb       *Empty           `json:"breadcrumb,omitempty"`
}

// UnmarshalJSON parses a block, mapping unknown discriminators to
// BlockUnsupported and reporting missing required fields as *ParseError.
func (b *Block) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBlock(data, "")
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// blockAlias avoids recursing into Block.UnmarshalJSON.
type blockAlias Block

// ParseBlock decodes a single block. path prefixes any reported field
// path, e.g. "results[3]".
func ParseBlock(data []byte, path string) (Block, error) {
	var raw blockAlias
	if err := json.Unmarshal(data, &raw); err != nil {
		return Block{}, &ParseError{Path: path, Err: err}
	}

	block := Block(raw)

	if block.ID == "" {
		return Block{}, &ParseError{Path: joinPath(path, "id"), Err: ErrFieldRequired}
	}
	if block.Type == "" {
		return Block{}, &ParseError{Path: joinPath(path, "type"), Err: ErrFieldRequired}
	}

	if !knownBlockTypes[block.Type] {
		// An unrecognised discriminator is not a failure: degrade to the
		// unsupported variant so the rest of the document still renders.
		block.Type = BlockUnsupported
		return block, nil
	}

	if err := block.normalizePayload(path); err != nil {
		return Block{}, err
	}
	return block, nil
}

// normalizePayload enforces that the payload matching Type is populated,
// allocating empty payloads for the variants whose payload carries no
// content, and applying wire defaults.
func (b *Block) normalizePayload(path string) error {
	missing := func(field string) error {
		return &ParseError{Path: joinPath(path, field), Err: ErrFieldRequired}
	}

	switch b.Type {
	case BlockParagraph:
		if b.Paragraph == nil {
			return missing("paragraph")
		}
	case BlockHeading1:
		if b.Heading1 == nil {
			return missing("heading_1")
		}
	case BlockHeading2:
		if b.Heading2 == nil {
			return missing("heading_2")
		}
	case BlockHeading3:
		if b.Heading3 == nil {
			return missing("heading_3")
		}
	case BlockBulletedListItem:
		if b.BulletedListItem == nil {
			return missing("bulleted_list_item")
		}
	case BlockNumberedListItem:
		if b.NumberedListItem == nil {
			return missing("numbered_list_item")
		}
	case BlockToDo:
		if b.ToDo == nil {
			return missing("to_do")
		}
	case BlockToggle:
		if b.Toggle == nil {
			return missing("toggle")
		}
	case BlockCode:
		if b.Code == nil {
			return missing("code")
		}
		if b.Code.Language == "" {
			b.Code.Language = "plain text"
		}
	case BlockQuote:
		if b.Quote == nil {
			return missing("quote")
		}
	case BlockCallout:
		if b.Callout == nil {
			return missing("callout")
		}
	case BlockEquation:
		if b.Equation == nil {
			return missing("equation")
		}
	case BlockImage:
		if b.Image == nil {
			return missing("image")
		}
	case BlockVideo:
		if b.Video == nil {
			return missing("video")
		}
	case BlockAudio:
		if b.Audio == nil {
			return missing("audio")
		}
	case BlockFile:
		if b.File == nil {
			return missing("file")
		}
	case BlockPDF:
		if b.PDF == nil {
			return missing("pdf")
		}
	case BlockBookmark:
		if b.BookmarkContent == nil {
			return missing("bookmark")
		}
	case BlockEmbed:
		if b.Embed == nil {
			return missing("embed")
		}
	case BlockLinkPreview:
		if b.LinkPreview == nil {
			return missing("link_preview")
		}
	case BlockChildPage:
		if b.ChildPage == nil {
			return missing("child_page")
		}
	case BlockChildDatabase:
		if b.ChildDatabase == nil {
			return missing("child_database")
		}
	case BlockTable:
		if b.TableContent == nil {
			return missing("table")
		}
	case BlockTableRow:
		if b.TableRowContent == nil {
			return missing("table_row")
		}
	case BlockTableOfContents:
		if b.TOC == nil {
			b.TOC = &TableOfContents{}
		}
	case BlockDivider:
		if b.Divider == nil {
			b.Divider = &Empty{}
		}
	case BlockBreadcrumb:
		if b.Breadcrumb == nil {
			b.Breadcrumb = &Empty{}
		}
	case BlockColumnList:
		if b.ColumnList == nil {
			b.ColumnList = &Empty{}
		}
	case BlockColumn:
		if b.Column == nil {
			b.Column = &Empty{}
		}
	case BlockUnsupported:
		// No payload.
	}
	return nil
}

// BlockList is the response of the Retrieve Block Children endpoint,
// optionally merged across pagination boundaries by the connector.
type BlockList struct {
	Object     string  `json:"object,omitempty"`
	Results    []Block `json:"results"`
	NextCursor string  `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
	RequestID  string  `json:"request_id,omitempty"`
}

// UnmarshalJSON decodes each result individually so parse failures name
// the offending entry, e.g. "results[3].paragraph".
func (l *BlockList) UnmarshalJSON(data []byte) error {
	var raw struct {
		Object     string            `json:"object"`
		Results    []json.RawMessage `json:"results"`
		NextCursor string            `json:"next_cursor"`
		HasMore    bool              `json:"has_more"`
		RequestID  string            `json:"request_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	list := BlockList{
		Object:     raw.Object,
		Results:    make([]Block, 0, len(raw.Results)),
		NextCursor: raw.NextCursor,
		HasMore:    raw.HasMore,
		RequestID:  raw.RequestID,
	}
	for i, entry := range raw.Results {
		block, err := ParseBlock(entry, fmt.Sprintf("results[%d]", i))
		if err != nil {
			return err
		}
		list.Results = append(list.Results, block)
	}

	*l = list
	return nil
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
