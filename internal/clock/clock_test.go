package clock

import (
	"sync"
	"testing"
	"time"
)

func TestRealClock(t *testing.T) {
	c := NewReal()
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()
	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v t2=%v", t1, t2)
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	if !m.Now().Equal(start) {
		t.Errorf("Expected %v, got %v", start, m.Now())
	}

	m.Advance(250 * time.Millisecond)
	if want := start.Add(250 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, m.Now())
	}

	later := start.Add(time.Hour)
	m.SetTime(later)
	if !m.Now().Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, m.Now())
	}
}

func TestMockClockConcurrency(t *testing.T) {
	m := NewMock(time.Time{})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = m.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				m.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := (time.Time{}).Add(800 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, m.Now())
	}
}

func TestTicker(t *testing.T) {
	m := NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	tk := NewTicker(m)

	m.Advance(16 * time.Millisecond)
	elapsed, dt := tk.Tick()
	if elapsed != 16*time.Millisecond || dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms/16ms, got %v/%v", elapsed, dt)
	}

	m.Advance(20 * time.Millisecond)
	elapsed, dt = tk.Tick()
	if elapsed != 36*time.Millisecond || dt != 20*time.Millisecond {
		t.Errorf("Expected 36ms/20ms, got %v/%v", elapsed, dt)
	}

	m.SetTime(tk.Start())
	if _, dt = tk.Tick(); dt != 0 {
		t.Errorf("Expected backwards jump to clamp dt to 0, got %v", dt)
	}
}
