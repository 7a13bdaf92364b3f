// Package services implements the core use cases: orchestrating page
// fetches, rendering, and file output. Services depend only on the
// domain and the port interfaces, never on concrete adapters.
package services
