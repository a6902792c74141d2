// Package driving defines the ports through which the outside world
// (CLI, HTTP API) drives the core services.
package driving
