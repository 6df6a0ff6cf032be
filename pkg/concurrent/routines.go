package concurrent

import sync2 "sync"

// RunAndWait starts one goroutine per function and waits for all of them to
// finish.
func RunAndWait(fns ...func()) {
	wg := sync2.WaitGroup{}
	for _, f := range fns {
		wg.Add(1)
		go func(f func()) {
			defer wg.Done()
			f()
		}(f)
	}
	wg.Wait()
}
