package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/sunnyland/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestEntityRecycling(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v after %v", fresh, old)
	}
	if fresh == old {
		t.Fatalf("expected a new generation, got the same handle %v", fresh)
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if _, ok := Get(w, old, h); ok {
		t.Fatalf("stale handle must not resolve")
	}
	if err := Add(w, old, h, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name: "replace_float",
			setup: func() error {
				if err := Add(w, e1, h3, float64Ptr(1.23)); err != nil {
					return err
				}
				return Add(w, e1, h3, float64Ptr(4.56))
			},
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h3)
				if !ok || *v != 4.56 {
					t.Fatalf("expected replaced value 4.56, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h3) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, e, component.NewComponent[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentHandle[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(nil, e, component.NewComponent[int](), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive on nil world, got %v", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	a := w.CreateEntity()
	b := w.CreateEntity()
	_ = Add(w, a, h, intPtr(1))
	_ = Add(w, b, h, intPtr(2))

	w.DestroyEntity(a)

	if got := w.store(h.ID(), false).Len(); got != 1 {
		t.Fatalf("expected 1 stored component, got %d", got)
	}
	v, ok := Get(w, b, h)
	if !ok || *v != 2 {
		t.Fatalf("expected survivor value 2, got %v ok=%v", v, ok)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]int{}
	ForEach(w, h, func(e Entity, v *int) { seen[e] = *v })

	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		_ = Add(w, w.CreateEntity(), h, intPtr(i))
	}

	visited := 0
	ForEach(w, h, func(e Entity, _ *int) {
		visited++
		w.DestroyEntity(e)
	})
	if visited != 4 || len(w.Entities()) != 0 {
		t.Fatalf("visited %d, %d left alive", visited, len(w.Entities()))
	}
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[string]()

				if err := Add(w, e1, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ha, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, hb, stringPtr("b")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, hb, stringPtr("c")); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ha, hb, func(e Entity, a *int, b *string) {
					if *a != 2 || *b != "b" {
						t.Fatalf("unexpected values %d %q", *a, *b)
					}
					res = append(res, e)
				})
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()

				if err := Add(w, e, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, hb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if !w.DestroyEntity(e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ha, hb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()

				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()

				if err := Add(w, e, ha, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ha, hb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := First(w, h); ok {
		t.Fatalf("expected no entity in empty world")
	}
	e := w.CreateEntity()
	_ = Add(w, e, h, intPtr(1))
	if got, ok := First(w, h); !ok || got != e {
		t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
	}
}

type lifecycleSystem struct {
	name    string
	log     *[]string
	initErr error
}

func (s *lifecycleSystem) Init(*World) error {
	*s.log = append(*s.log, s.name+".init")
	return s.initErr
}

func (s *lifecycleSystem) Activate() {
	*s.log = append(*s.log, s.name+".activate")
}

func (s *lifecycleSystem) Deactivate() {
	*s.log = append(*s.log, s.name+".deactivate")
}

func (s *lifecycleSystem) Update(*World, float64) {
	*s.log = append(*s.log, s.name+".update")
}

func (s *lifecycleSystem) FixedUpdate(*World, float64) {
	*s.log = append(*s.log, s.name+".fixed")
}

func TestWorldSystemLifecycle(t *testing.T) {
	var log []string
	a := &lifecycleSystem{name: "a", log: &log}
	b := &lifecycleSystem{name: "b", log: &log}

	w := NewWorld()
	w.AddSystem(a)
	w.AddFixedSystem(a)
	w.AddFixedSystem(b)

	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	w.Activate()
	w.Activate()
	w.Update(0.1)
	w.FixedUpdate(0.02)
	w.Deactivate()
	w.Deactivate()

	want := []string{
		"a.init", "b.init",
		"a.activate", "b.activate",
		"a.update",
		"a.fixed", "b.fixed",
		"a.deactivate", "b.deactivate",
	}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("step %d: got %q, want %q (%v)", i, log[i], want[i], log)
		}
	}
	if w.Active() {
		t.Fatalf("expected inactive world")
	}
}

func TestWorldInitStopsAtError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	w := NewWorld()
	w.AddSystem(&lifecycleSystem{name: "a", log: &log, initErr: boom})
	w.AddSystem(&lifecycleSystem{name: "b", log: &log})

	if err := w.Init(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(log) != 1 {
		t.Fatalf("expected init to stop after first error, got %v", log)
	}
}
