package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestSharded_GetSet(t *testing.T) {
	s := NewSharded[int](0)
	if _, ok := s.Get("a"); ok {
		t.Error("Get on empty cache returned ok")
	}
	for i := 0; i < 100; i++ {
		s.Set(strconv.Itoa(i), i)
	}
	if s.Len() != 100 {
		t.Errorf("Len() = %d, want 100", s.Len())
	}
	if v, ok := s.Get("42"); !ok || v != 42 {
		t.Errorf("Get(42) = %v, %v", v, ok)
	}
	if !s.Delete("42") || s.Delete("42") {
		t.Error("Delete should succeed once")
	}

	st := s.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Len != 99 {
		t.Errorf("Stats() = %+v", st)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d", s.Len())
	}
}

func TestSharded_Capacity(t *testing.T) {
	s := NewSharded[int](shardCount)
	for i := 0; i < 1000; i++ {
		s.Set(strconv.Itoa(i), i)
	}
	if s.Len() > shardCount {
		t.Errorf("Len() = %d, want at most %d", s.Len(), shardCount)
	}
	if got := s.Stats().Capacity; got != shardCount {
		t.Errorf("Capacity = %d, want %d", got, shardCount)
	}
}

func TestSharded_Concurrent(t *testing.T) {
	s := NewSharded[int](256)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := strconv.Itoa(g*1000 + i%64)
				s.Set(k, i)
				s.Get(k)
			}
		}(g)
	}
	wg.Wait()
	if s.Len() > 256+shardCount {
		t.Errorf("Len() = %d exceeds capacity", s.Len())
	}
}
