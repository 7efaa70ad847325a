package workers

// Workers runs a set of background workers in registration order.
type Workers struct {
	workers []Worker
}

// New aggregates the given workers.
func New(list ...Worker) *Workers {
	return &Workers{workers: list}
}

// Run starts every worker in order. Workers that block are expected to
// spawn their own goroutines.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// FuncWorker adapts a plain function to the Worker interface.
type FuncWorker func()

// Run invokes the wrapped function.
func (f FuncWorker) Run() {
	f()
}
