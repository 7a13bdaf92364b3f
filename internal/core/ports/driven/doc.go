// Package driven defines the secondary ports: interfaces the core
// services require from infrastructure (content sources, persistence,
// configuration). Adapters under internal/adapters and connectors under
// internal/connectors implement these interfaces.
package driven
