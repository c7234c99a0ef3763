package eventbus

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/observer/core/events"
	"github.com/kilianp07/observer/core/listener"
)

func TestForCreatesBusOnce(t *testing.T) {
	reg := NewRegistry()
	_, ok := Lookup[scored](reg)
	require.False(t, ok)

	b1 := For[scored](reg)
	b2 := For[scored](reg)
	assert.Same(t, b1, b2)

	b3, ok := Lookup[scored](reg)
	require.True(t, ok)
	assert.Same(t, b1, b3)
	assert.True(t, reg.Has(reflect.TypeFor[scored]()))
}

func TestRegistryLenCountsBusesOnce(t *testing.T) {
	reg := NewRegistry()
	For[renamed](reg)
	For[scored](reg)
	For[renamed](reg)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryClearByType(t *testing.T) {
	reg := NewRegistry()
	NewListener[scored](reg).Register()
	NewListener[renamed](reg).Register()

	assert.True(t, reg.Clear(reflect.TypeFor[scored]()))
	assert.Equal(t, 0, For[scored](reg).Len())
	assert.Equal(t, 1, For[renamed](reg).Len())

	assert.False(t, reg.Clear(reflect.TypeFor[events.NoArgs]()))
}

func TestNilRegistryUsesDefault(t *testing.T) {
	l := NewListener(nil, listener.NewFunc(func(events.NoArgs) {}))
	l.Register()
	defer l.Unregister()
	assert.True(t, For[events.NoArgs](Default()).Contains(l))
	assert.Same(t, For[events.NoArgs](nil), For[events.NoArgs](Default()))
}

func TestZeroRegistryUsable(t *testing.T) {
	var reg Registry
	b := For[scored](&reg)
	assert.NotNil(t, b)
	assert.Equal(t, 1, reg.Len())
}

func TestSubscriptionForwardsAndDrops(t *testing.T) {
	reg := NewRegistry()
	sub := Subscribe[scored](reg, 1)
	bus := For[scored](reg)

	bus.Invoke(scored{Points: 1})
	bus.Invoke(scored{Points: 2})
	assert.Equal(t, 1, sub.Dropped())
	assert.Equal(t, 1, (<-sub.C).Points)

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, bus.Len())
	_, open := <-sub.C
	assert.False(t, open)
}
