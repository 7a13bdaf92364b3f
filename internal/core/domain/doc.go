// Package domain defines the core entities for Notemill.
//
// This package is part of the hexagonal architecture's innermost layer
// and defines the fundamental types:
//
//   - Block: One node in a page's flattened content tree, tagged by type
//   - RichText: The smallest unit of styled inline text
//   - Page: A blog page row from a Notion data source
//   - BlockList: The merged result of the block children endpoint
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
