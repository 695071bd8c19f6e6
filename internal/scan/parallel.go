package scan

import (
	"runtime"
	"sync"
)

// WorkItem holds a classified amber transcript ready for simulation.
type WorkItem struct {
	Seq        int
	Transcript *Transcript
}

// WorkResult holds the simulation output for a single transcript.
type WorkResult struct {
	Seq    int
	Record *AmberRecord
	Err    error
}

// ParallelSimulate runs readthrough simulation over items using a pool
// of workers. Results are sent to the returned channel in arrival order
// (not sequence order); use OrderedCollect to consume them in
// sequence-number order. If workers is 0, runtime.NumCPU() is used.
func (s *Simulator) ParallelSimulate(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				rec, err := s.Simulate(item.Transcript)
				results <- WorkResult{
					Seq:    item.Seq,
					Record: rec,
					Err:    err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect consumes the results channel and invokes fn once per
// result, in sequence-number order regardless of worker completion
// order. Results that arrive early are held back until every lower
// sequence number has been emitted; the map stays small because workers
// finish at similar rates. Returns the first error from fn, after
// draining the channel so no worker blocks on send.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	held := make(map[int]WorkResult)
	want := 0

	for r := range results {
		held[r.Seq] = r

		for {
			next, ok := held[want]
			if !ok {
				break
			}
			delete(held, want)
			want++
			if err := fn(next); err != nil {
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
