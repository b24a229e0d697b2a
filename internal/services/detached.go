package services

import (
	"context"
	"fmt"
	"sync"
)

// DetachedRunner runs units of work whose outcome is never joined with a
// request's result. Failures reach the observe hook and nothing else; the
// client has already been answered by the time a detached task runs.
type DetachedRunner struct {
	observe func(name string, err error)
	wg      sync.WaitGroup
}

func NewDetachedRunner(observe func(name string, err error)) *DetachedRunner {
	if observe == nil {
		observe = func(name string, err error) {
			fmt.Println("detached task failed: ", name, ": ", err.Error())
		}
	}
	return &DetachedRunner{observe: observe}
}

func (s *DetachedRunner) Go(name string, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := fn(context.Background()); err != nil {
			s.observe(name, err)
		}
	}()
}

// Wait blocks until every task started so far has finished.
func (s *DetachedRunner) Wait() {
	s.wg.Wait()
}
