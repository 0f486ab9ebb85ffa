// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "sync"

// Pool runs submitted tasks on at most size goroutines. Task errors are
// collected and returned by Wait in completion order; a failed task does not
// stop the others.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool returns a pool with the given concurrency cap. A cap below one is
// treated as one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Go submits a task. It blocks while the pool is at capacity.
func (p *Pool) Go(task func() error) {
	p.wg.Add(1)
	p.sem <- struct{}{}

	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()

		if err := task(); err != nil {
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}()
}

// Wait blocks until every submitted task has finished and returns the
// collected errors. The pool is reusable after Wait.
func (p *Pool) Wait() []error {
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	errs := p.errs
	p.errs = nil

	return errs
}
