// Package driving defines the primary ports: the use-case interfaces
// the CLI invokes on the core services.
package driving
