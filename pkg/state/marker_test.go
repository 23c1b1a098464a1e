package state

import (
	"sync"
	"testing"
)

// TestMarker verifies that a marker starts unmarked and stays marked once
// marked from any goroutine.
func TestMarker(t *testing.T) {
	var marker Marker
	if marker.Marked() {
		t.Fatal("zero value marker is marked")
	}

	var group sync.WaitGroup
	for i := 0; i < 4; i++ {
		group.Add(1)
		go func() {
			defer group.Done()
			marker.Mark()
		}()
	}
	group.Wait()

	if !marker.Marked() {
		t.Error("marker not marked after concurrent marking")
	}
}
