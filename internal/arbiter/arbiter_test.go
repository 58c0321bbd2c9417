package arbiter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectorRoundRobin(t *testing.T) {
	a := New()
	indices := []int{
		a.NextIndex(ClassProjectorOut, 2),
		a.NextIndex(ClassProjectorOut, 2),
		a.NextIndex(ClassProjectorOut, 2),
	}
	assert.Equal(t, []int{0, 1, 0}, indices)
}

func TestDeviceIndexWrap(t *testing.T) {
	a := New()
	for n := 0; n < 10; n++ {
		idx := a.NextIndex(ClassHardDriveOut, 3)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
		assert.Equal(t, n%3, idx)
	}
}

func TestIndependentClasses(t *testing.T) {
	a := New()
	a.NextIndex(ClassHardDriveOut, 4)
	a.NextIndex(ClassHardDriveOut, 4)
	first := a.NextIndex(ClassHardDriveIn, 4)
	assert.Equal(t, 0, first, "hdd-in counter must be independent of hdd-out")
}

func TestIOMutexSerializes(t *testing.T) {
	a := New()
	var active int
	var maxActive int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Lock()
			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
			a.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxActive)
}
