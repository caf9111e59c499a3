package input

import "testing"

type countingSource struct {
	polls int
	next  Snapshot
}

func (c *countingSource) Poll() Snapshot {
	c.polls++
	return c.next
}

func TestBindingLifecycle(t *testing.T) {
	src := &countingSource{next: Snapshot{MoveX: 1, JumpPressed: true, CrouchPressed: true}}
	b := NewBinding(src)

	tests := []struct {
		name      string
		step      func()
		want      Snapshot
		wantPolls int
	}{
		{"disabled_by_default", func() {}, Snapshot{}, 0},
		{"enabled_polls_source", b.Enable, src.next, 1},
		{"disabled_drops_events", b.Disable, Snapshot{}, 1},
		{"reenabled_polls_again", b.Enable, src.next, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.step()
			if got := b.Read(); got != tc.want {
				t.Fatalf("Read() = %+v, want %+v", got, tc.want)
			}
			if src.polls != tc.wantPolls {
				t.Fatalf("expected %d polls, got %d", tc.wantPolls, src.polls)
			}
		})
	}
}

func TestNilBinding(t *testing.T) {
	var b *Binding
	b.Enable()
	if b.Enabled() {
		t.Fatalf("nil binding should never report enabled")
	}
	if got := b.Read(); got != (Snapshot{}) {
		t.Fatalf("nil binding Read() = %+v, want zero", got)
	}
}

func TestSourceFunc(t *testing.T) {
	b := NewBinding(SourceFunc(func() Snapshot { return Snapshot{MoveX: -0.5} }))
	b.Enable()
	if got := b.Read().MoveX; got != -0.5 {
		t.Fatalf("MoveX = %v, want -0.5", got)
	}
}

func TestClampAxis(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-2, -1},
		{-1, -1},
		{0, 0},
		{0.3, 0.3},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := clampAxis(c.in); got != c.want {
			t.Fatalf("clampAxis(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
