// Package workers runs the client's background jobs. Today that is a
// single job, the periodic update check, but the aggregate keeps the
// wiring uniform should more appear.
package workers

// Worker is the interface implemented by any background job.
// Implementations are expected to spawn goroutines internally and
// return from Run immediately.
type Worker interface {
	Run()
}
