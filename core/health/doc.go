// Package health runs readiness checks against the service's dependencies.
//
// Dependencies (database pool, object storage) expose a Checker; Run checks
// them concurrently and folds the results into a single Report.
package health
