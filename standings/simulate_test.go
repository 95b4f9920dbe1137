package standings

import "testing"

func TestUniformScoreSourceRange(t *testing.T) {
	src := NewUniformScoreSource(42)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		h, a := src.Score()
		for _, g := range []int{h, a} {
			if g < 0 || g > MaxSimulatedGoals {
				t.Fatalf("goal count %d outside 0..%d", g, MaxSimulatedGoals)
			}
			seen[g] = true
		}
	}
	for g := 0; g <= MaxSimulatedGoals; g++ {
		if !seen[g] {
			t.Errorf("value %d never drawn in 1000 samples", g)
		}
	}
}

func TestUniformScoreSourceSeeded(t *testing.T) {
	a, b := NewUniformScoreSource(7), NewUniformScoreSource(7)
	for i := 0; i < 50; i++ {
		ah, aa := a.Score()
		bh, ba := b.Score()
		if ah != bh || aa != ba {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestFixedScoreSource(t *testing.T) {
	src := NewFixedScoreSource([2]int{1, 0}, [2]int{2, 2})
	want := [][2]int{{1, 0}, {2, 2}, {2, 2}}
	for i, w := range want {
		h, a := src.Score()
		if h != w[0] || a != w[1] {
			t.Errorf("draw %d: want %v, got %d-%d", i, w, h, a)
		}
	}
}
