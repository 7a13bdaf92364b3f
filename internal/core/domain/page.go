package domain

import (
	"strings"
	"time"
)

// SelectOption is one value of a select or multi-select property.
type SelectOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SelectProperty is a single-choice page property.
type SelectProperty struct {
	ID     string        `json:"id"`
	Type   string        `json:"type"`
	Select *SelectOption `json:"select,omitempty"`
}

// MultiSelectProperty is a multi-choice page property.
type MultiSelectProperty struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	MultiSelect []SelectOption `json:"multi_select"`
}

// RichTextProperty is a rich text page property.
type RichTextProperty struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	RichText []RichText `json:"rich_text"`
}

// TitleProperty is the page title property.
type TitleProperty struct {
	ID    string     `json:"id"`
	Type  string     `json:"type"`
	Title []RichText `json:"title"`
}

// PageProperties are the blog-specific properties of a data source page.
type PageProperties struct {
	Status      SelectProperty      `json:"Status"`
	Tags        MultiSelectProperty `json:"Tags"`
	Slug        RichTextProperty    `json:"Slug"`
	Description RichTextProperty    `json:"Description"`
	Type        SelectProperty      `json:"Type"`
	Name        TitleProperty       `json:"Name"`
}

// DataSourceParent locates the data source a page belongs to.
type DataSourceParent struct {
	Type         string `json:"type"`
	DataSourceID string `json:"data_source_id"`
	DatabaseID   string `json:"database_id"`
}

// Page is one blog page row returned by a data source query.
type Page struct {
	Object         string           `json:"object,omitempty"`
	ID             string           `json:"id"`
	CreatedTime    time.Time        `json:"created_time"`
	LastEditedTime time.Time        `json:"last_edited_time"`
	CreatedBy      PartialUser      `json:"created_by"`
	LastEditedBy   PartialUser      `json:"last_edited_by"`
	Icon           *Icon            `json:"icon,omitempty"`
	Parent         DataSourceParent `json:"parent"`
	Archived       bool             `json:"archived"`
	InTrash        bool             `json:"in_trash"`
	IsLocked       bool             `json:"is_locked"`
	Properties     PageProperties   `json:"properties"`
	URL            string           `json:"url"`
	PublicURL      string           `json:"public_url,omitempty"`
}

// Title returns the page title as plain text.
func (p *Page) Title() string {
	return PlainText(p.Properties.Name.Title)
}

// Slug returns the page slug property as plain text.
func (p *Page) Slug() string {
	return PlainText(p.Properties.Slug.RichText)
}

// Description returns the page description as plain text.
func (p *Page) Description() string {
	return PlainText(p.Properties.Description.RichText)
}

// Status returns the status select value, or "" when unset.
func (p *Page) Status() string {
	if p.Properties.Status.Select == nil {
		return ""
	}
	return p.Properties.Status.Select.Name
}

// TypeName returns the type select value, or "" when unset.
func (p *Page) TypeName() string {
	if p.Properties.Type.Select == nil {
		return ""
	}
	return p.Properties.Type.Select.Name
}

// Tags returns the multi-select tag names in property order.
func (p *Page) Tags() []string {
	tags := make([]string, 0, len(p.Properties.Tags.MultiSelect))
	for _, opt := range p.Properties.Tags.MultiSelect {
		tags = append(tags, opt.Name)
	}
	return tags
}

// PageID returns the un-dashed page identifier embedded in the page URL.
// Notion page URLs end in "<title>-<32 hex chars>".
func (p *Page) PageID() string {
	idx := strings.LastIndex(p.URL, "-")
	if idx < 0 || idx == len(p.URL)-1 {
		return p.ID
	}
	return p.URL[idx+1:]
}

// PageList is the response of a data source query, optionally merged
// across pagination boundaries by the connector.
type PageList struct {
	Object     string `json:"object,omitempty"`
	Results    []Page `json:"results"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
	RequestID  string `json:"request_id,omitempty"`
}
