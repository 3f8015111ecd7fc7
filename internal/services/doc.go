// Package services contains the application facade between the HTTP
// transport and the analytics core. The service owns the dataset registry,
// tags every payload with a data source marker, and converts internal
// faults into degraded results instead of errors.
package services
