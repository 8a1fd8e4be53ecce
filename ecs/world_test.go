package ecs

import (
	"testing"
	"time"

	"github.com/milk9111/orbital/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestSparseWorldEntityLifecycle(t *testing.T) {
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
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)
			if c.destroyIndex >= 0 {
				require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
				assert.False(t, IsAlive(w, ents[c.destroyIndex]))
				assert.False(t, DestroyEntity(w, ents[c.destroyIndex]), "double destroy")
				assert.Len(t, Entities(w), c.create-1)
			}
		})
	}
}

func TestEntityIDReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	require.True(t, DestroyEntity(w, a))
	b := CreateEntity(w)

	assert.Equal(t, a.id(), b.id())
	assert.NotEqual(t, a, b)
	assert.False(t, IsAlive(w, a))
	assert.True(t, IsAlive(w, b))
	assert.False(t, Entity(0).Valid())
	assert.False(t, IsAlive(w, 0))
}

func TestSparseWorldComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	require.NoError(t, Add(w, e1, ints.Kind(), intPtr(10)))
	v, ok := Get(w, e1, ints.Kind())
	require.True(t, ok)
	assert.Equal(t, 10, *v)

	require.NoError(t, Add(w, e1, ints.Kind(), intPtr(11)))
	v, _ = Get(w, e1, ints.Kind())
	assert.Equal(t, 11, *v, "add replaces")

	require.NoError(t, Add(w, e1, strs.Kind(), stringPtr("a")))
	require.NoError(t, Add(w, e2, strs.Kind(), stringPtr("b")))
	assert.True(t, Has(w, e1, strs.Kind()))
	assert.True(t, Has(w, e2, strs.Kind()))
	assert.Equal(t, 2, Count(w, strs.Kind()))

	assert.True(t, Remove(w, e1, strs.Kind()))
	assert.False(t, Remove(w, e1, strs.Kind()))
	s, ok := Get(w, e2, strs.Kind())
	require.True(t, ok, "swap-remove keeps the moved entity reachable")
	assert.Equal(t, "b", *s)

	t.Run("errors", func(t *testing.T) {
		assert.ErrorIs(t, Add(w, e1, ints.Kind(), nil), component.ErrNilComponent)
		assert.ErrorIs(t, Add(w, e1, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
		dead := CreateEntity(w)
		DestroyEntity(w, dead)
		assert.ErrorIs(t, Add(w, dead, ints.Kind(), intPtr(1)), component.ErrEntityNotAlive)
	})

	t.Run("destroy_clears_components", func(t *testing.T) {
		require.True(t, DestroyEntity(w, e2))
		reused := CreateEntity(w)
		assert.False(t, Has(w, reused, strs.Kind()))
		_, ok := Get(w, e2, strs.Kind())
		assert.False(t, ok)
	})
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	require.NoError(t, Add(w, e1, h.Kind(), intPtr(1)))
	require.NoError(t, Add(w, e3, h.Kind(), intPtr(3)))

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	assert.Contains(t, set, e1)
	assert.Contains(t, set, e3)
	assert.NotContains(t, set, e2)
}

func TestForEachToleratesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	var ents []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		ents = append(ents, e)
		require.NoError(t, Add(w, e, h.Kind(), intPtr(i)))
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		if e == ents[0] {
			DestroyEntity(w, ents[3])
		}
	})
	assert.Equal(t, 3, visited)
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e1, ka, intPtr(1)))
				require.NoError(t, Add(w, e2, ka, intPtr(2)))
				require.NoError(t, Add(w, e2, kb, intPtr(3)))
				require.NoError(t, Add(w, e2, kc, intPtr(5)))
				require.NoError(t, Add(w, e3, kb, intPtr(4)))
				require.NoError(t, Add(w, e4, kc, intPtr(6)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				require.Len(t, res, 1)
				assert.Equal(t, e2, res[0])
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))
				require.NoError(t, Add(w, e, kb, intPtr(2)))
				require.NoError(t, Add(w, e, kc, intPtr(3)))
				require.True(t, DestroyEntity(w, e))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				assert.Empty(t, res)
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				require.NoError(t, Add(w, e, ka, intPtr(1)))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				assert.Empty(t, res)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirstAndSingle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()

	_, ok := First(w, h.Kind())
	assert.False(t, ok)

	e := CreateEntity(w)
	require.NoError(t, Add(w, e, h.Kind(), stringPtr("only")))

	got, v, ok := Single(w, h.Kind())
	require.True(t, ok)
	assert.Equal(t, e, got)
	assert.Equal(t, "only", *v)
}

func TestEventQueueDrainTypes(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: "a", Data: 1})
	q.Push(Event{Type: "b", Data: 2})
	q.Push(Event{Type: "a", Data: 3})
	q.Push(Event{Type: "c", Data: 4})

	got := q.DrainTypes("a", "c")
	require.Len(t, got, 3)
	assert.Equal(t, []any{1, 3, 4}, []any{got[0].Data, got[1].Data, got[2].Data})
	assert.Equal(t, 1, q.Len())

	rest := q.Drain()
	require.Len(t, rest, 1)
	assert.Equal(t, "b", rest[0].Type)
	assert.Nil(t, q.Drain())
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"drift", &log}, nil, recordSystem{"orbit", &log})
	s.Add(recordSystem{"anim", &log})
	s.Update(NewWorld())
	assert.Equal(t, []string{"drift", "orbit", "anim"}, log)
	assert.Len(t, s.Systems(), 3)
}

func TestWorldAdvance(t *testing.T) {
	w := NewWorld()
	w.Advance(20 * time.Millisecond)
	w.Advance(30 * time.Millisecond)
	w.Advance(-time.Second)

	tm := w.Time()
	assert.Equal(t, time.Duration(0), tm.Delta)
	assert.Equal(t, 50*time.Millisecond, tm.Elapsed)
	assert.Equal(t, uint64(3), tm.Step)
}
