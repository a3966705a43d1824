package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLockReturnsSameMutexForSameKey(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock("inv-1")
	b := lm.GetLock("inv-1")
	c := lm.GetLock("inv-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestGetLockSerializesCounterUpdates(t *testing.T) {
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu := lm.GetLock("shared")
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestGetLockConcurrentFirstUse(t *testing.T) {
	lm := NewLockManager()

	results := make(chan *sync.Mutex, 50)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- lm.GetLock("race")
		}()
	}
	wg.Wait()
	close(results)

	first := <-results
	for mu := range results {
		assert.Same(t, first, mu)
	}
}
