package launcher

import "sync"

// joiner decorates a ThreadCreator so tests can wait for spawned threads to
// finish, cleanup included. Production code never joins.
type joiner struct {
	wg      sync.WaitGroup
	next    ThreadCreator
	mux     sync.Mutex
	created int
}

func newJoiner(next ThreadCreator) *joiner {
	if next == nil {
		next = NewOSThreads(0)
	}
	return &joiner{next: next}
}

func (j *joiner) Create(entry func()) error {
	j.wg.Add(1)
	if err := j.next.Create(func() {
		defer j.wg.Done()
		entry()
	}); err != nil {
		j.wg.Done()
		return err
	}
	j.mux.Lock()
	j.created++
	j.mux.Unlock()
	return nil
}

func (j *joiner) Join() {
	j.wg.Wait()
}

func (j *joiner) Created() int {
	j.mux.Lock()
	defer j.mux.Unlock()
	return j.created
}
