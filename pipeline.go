package putt

import "sync"

// task splits jobs in contiguous chunks, one per worker, and waits until every
// job is done. fn receives the job index, so results can be written in place
// without locking.
func task[T any](workersCount int, jobs []T, fn func(i int, job T)) {
	if len(jobs) == 0 {
		return
	}
	workersCount = min(max(workersCount, 1), len(jobs))
	chunkSize := (len(jobs) + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	for start := 0; start < len(jobs); start += chunkSize {
		end := min(start+chunkSize, len(jobs))

		wg.Add(1)
		go func(chunk []T, offset int) {
			defer wg.Done()
			for i, job := range chunk {
				fn(offset+i, job)
			}
		}(jobs[start:end], start)
	}
	wg.Wait()
}
