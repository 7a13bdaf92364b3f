// Package notion implements the PageSource port against the Notion API.
//
// The connector owns authentication (bearer token transport), cursor
// pagination, rate limiting, and transient retries. Callers receive
// fully merged page and block sequences; no cursor state leaks out.
package notion
