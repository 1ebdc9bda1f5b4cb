// Package iconbatch generates one component file per configured icon.
//
// Driver.Run fans the icons out over a parallel.Executor. Each job resolves the
// icon path, renders the shared template and writes the result; the first
// failing job fails the run.
package iconbatch
