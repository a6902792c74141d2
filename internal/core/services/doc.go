// Package services implements the core use cases: the search engine
// serving ranked queries over a loaded catalog, and the index builder
// assembling and writing that catalog.
package services
