package tests

import (
	"sync/atomic"
	"testing"

	"github.com/ib-77/chainer/pkg/chainer"
	"github.com/ib-77/chainer/pkg/chainer/basic"
	"github.com/ib-77/chainer/pkg/chainer/results"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	value int
}

func (c *counter) increment() int {
	c.value++
	return c.value
}

// TestCounterScenarioBasic walks the counter through three mutating chain
// calls and checks both the intermediate returns and the final state.
func TestCounterScenarioBasic(t *testing.T) {
	c := &counter{}

	returned := make([]int, 0, 3)
	step := func(c *counter) int {
		v := c.increment()
		returned = append(returned, v)
		return v
	}

	got := basic.ChainMut(basic.ChainMut(basic.ChainMut(c, step), step), step)

	assert.Same(t, c, got)
	assert.Equal(t, 3, c.value)
	assert.Equal(t, []int{1, 2, 3}, returned)
}

// TestCounterScenarioResults runs the same three increments through the
// extended variant and reads the retained result afterwards.
func TestCounterScenarioResults(t *testing.T) {
	c := &counter{}

	link := results.ThenMut(results.ThenMut(results.ChainMut(c,
		(*counter).increment),
		(*counter).increment),
		(*counter).increment)

	assert.Equal(t, 3, link.Result())
	assert.Same(t, c, link.Subject())
	assert.Equal(t, 3, link.Subject().value)
}

// TestSideEffectCount verifies each immutable chain call runs its step
// exactly once, counted through an atomic.
func TestSideEffectCount(t *testing.T) {
	var effects atomic.Int32
	c := &counter{}

	tick := func(c *counter) int32 { return effects.Add(1) }
	basic.Chain(basic.Chain(basic.Chain(c, tick), tick), tick)

	assert.Equal(t, int32(3), effects.Load())
}

// TestWrappersSatisfyLink drives both wrapper kinds through the provider
// interfaces of the root package.
func TestWrappersSatisfyLink(t *testing.T) {
	c := &counter{}

	var shared chainer.Link[counter, int] = results.Chain(c,
		func(c *counter) int { return c.value })
	var exclusive chainer.Link[counter, int] = results.ChainMut(c,
		(*counter).increment)

	assert.Equal(t, 0, shared.Result())
	assert.Equal(t, 1, exclusive.Result())
	assert.Same(t, c, shared.Subject())
	assert.Same(t, c, exclusive.Subject())
	assert.NotEqual(t, shared.Id(), exclusive.Id())
	assert.False(t, shared.CreatedAt().IsZero())
}
