// Package render converts a flat, ordered sequence of Notion blocks into
// textual output. Two dialects are supported: plain Markdown, and an MDX
// markup dialect that embeds presentational components (Callout, Image,
// Accordion, ...) for shapes Markdown cannot express.
//
// Rendering is pure and deterministic: every invocation owns its own
// numbered-list counter and output buffer, input structures are never
// mutated, and independent callers may render concurrently without
// coordination. The package does not recurse into child blocks; callers
// must supply a pre-flattened sequence.
package render
