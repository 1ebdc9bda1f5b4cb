// Package parallel runs independent tasks on a bounded worker pool and reports the first failure.
package parallel
