// Package app wires configuration, logging, the dataset registry, the
// analytics service, and the HTTP router into a runnable application.
package app
