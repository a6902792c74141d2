// Package driven defines the ports the core services depend on:
// catalog transport and content discovery. Adapters under
// internal/adapters/driven implement them.
package driven
