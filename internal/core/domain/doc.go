// Package domain contains the core business entities for oposearch:
// searchable records, the catalog artifact, theme numbers and scored
// search results. It has no dependencies outside the standard library.
package domain
