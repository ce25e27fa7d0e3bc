package selector_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/on-the-ground/keyed_selector_go/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state struct {
	A, B int
	Tags []string
}

func getA(args ...any) any { return args[0].(*state).A }
func getB(args ...any) any { return args[0].(*state).B }

func TestMemoized_RecomputesOnlyOnNewInputs(t *testing.T) {
	m := selector.New(
		[]selector.Selector{getA, getB},
		func(r ...any) any { return r[0].(int) + r[1].(int) },
		nil,
	)

	s := &state{A: 1, B: 2}
	assert.Equal(t, 3, m.Select(s))
	assert.Equal(t, 3, m.Select(s))
	assert.Equal(t, 3, m.Select(&state{A: 1, B: 2}))
	assert.Equal(t, 1, m.Recomputations())

	s.A = 10
	assert.Equal(t, 12, m.Select(s))
	assert.Equal(t, 2, m.Recomputations())

	assert.Equal(t, 0, m.ResetRecomputations())
	assert.Equal(t, 0, m.Recomputations())
}

func TestMemoized_MaxSize(t *testing.T) {
	count := 0
	m := selector.New(
		[]selector.Selector{getA},
		func(r ...any) any { count++; return r[0].(int) * 2 },
		&selector.Options{MaxSize: 4},
	)

	for _, a := range []int{1, 2, 1, 2} {
		m.Select(&state{A: a})
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, m.Recomputations())
}

func TestMemoized_DefaultSizeKeepsLatest(t *testing.T) {
	m := selector.New([]selector.Selector{getA}, func(r ...any) any { return r[0] }, nil)

	m.Select(&state{A: 1})
	m.Select(&state{A: 1})
	assert.Equal(t, 1, m.Recomputations())

	m.Select(&state{A: 2})
	m.Select(&state{A: 3})
	m.Select(&state{A: 1})
	assert.Equal(t, 4, m.Recomputations())
}

func TestMemoized_SliceResultsByIdentity(t *testing.T) {
	m := selector.New(
		[]selector.Selector{func(args ...any) any { return args[0].(*state).Tags }},
		func(r ...any) any { return len(r[0].([]string)) },
		nil,
	)

	tags := []string{"a", "b"}
	s := &state{Tags: tags}
	assert.Equal(t, 2, m.Select(s))
	assert.Equal(t, 2, m.Select(s))
	assert.Equal(t, 1, m.Recomputations())

	// equal content, different backing array
	s.Tags = []string{"a", "b"}
	assert.Equal(t, 2, m.Select(s))
	assert.Equal(t, 2, m.Recomputations())
}

type tagSet struct {
	items []string
}

func (t tagSet) String() string { return fmt.Sprintf("%d tags", len(t.items)) }

func TestMemoized_NeverMatchesStringersByText(t *testing.T) {
	m := selector.New(
		[]selector.Selector{func(args ...any) any { return args[0] }},
		func(r ...any) any { return r[0].(tagSet).items[0] },
		nil,
	)

	assert.Equal(t, "a", m.Select(tagSet{items: []string{"a"}}))
	assert.Equal(t, "b", m.Select(tagSet{items: []string{"b"}}))
	assert.Equal(t, 2, m.Recomputations())
}

func TestMemoized_SliceKeysSurviveGC(t *testing.T) {
	m := selector.New(
		[]selector.Selector{func(args ...any) any {
			s := make([]int, 4)
			s[0] = args[0].(int)
			return s
		}},
		func(r ...any) any { return r[0].([]int)[0] },
		&selector.Options{MaxSize: 2},
	)

	for i := 0; i < 500; i++ {
		require.Equal(t, i, m.Select(i))
		runtime.GC()
	}
	assert.Equal(t, 500, m.Recomputations())
}

type TotallyInvalid struct {
	Field []int
}

func TestMemoized_NeverMatchesOpaqueValues(t *testing.T) {
	m := selector.New(
		[]selector.Selector{func(args ...any) any { return args[0] }},
		func(r ...any) any { return len(r[0].(TotallyInvalid).Field) },
		nil,
	)

	v := TotallyInvalid{Field: []int{1}}
	assert.NotPanics(t, func() {
		m.Select(v)
		m.Select(v)
	})
	assert.Equal(t, 2, m.Recomputations())
}

func TestMemoized_NoInputs(t *testing.T) {
	m := selector.New(nil, func(r ...any) any { return "const" }, nil)

	assert.Equal(t, "const", m.Select())
	assert.Equal(t, "const", m.Select(1, 2))
	assert.Equal(t, 1, m.Recomputations())
}

func TestMemoized_CombinerPanicPropagates(t *testing.T) {
	m := selector.New([]selector.Selector{getA}, func(r ...any) any { panic("boom") }, nil)
	assert.PanicsWithValue(t, "boom", func() { m.Select(&state{}) })
}

func TestMemoized_Accessors(t *testing.T) {
	inputs := []selector.Selector{getA, getB}
	m := selector.New(inputs, func(r ...any) any { return nil }, nil)

	assert.Len(t, m.Dependencies(), 2)
	assert.NotNil(t, m.ResultFunc())
	assert.NotEmpty(t, m.ID())
	assert.NotEqual(t, m.ID(), selector.New(inputs, nil, nil).ID())
}

func TestCreate_ReturnsMemoized(t *testing.T) {
	h := selector.Create([]selector.Selector{getA}, func(r ...any) any { return r[0] }, nil)
	_, ok := h.(*selector.Memoized)
	require.True(t, ok)
	assert.Equal(t, 5, h.Select(&state{A: 5}))
}
