package workers

// Workers is an ordered aggregate of background workers started together on
// application boot.
type Workers struct {
	workers []Worker
}

// NewWorkers collects workers to be started in the given order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
