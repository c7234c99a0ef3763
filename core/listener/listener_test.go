package listener

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerInvokeReverseOrder(t *testing.T) {
	l := NewListener()
	var calls []int
	for i := 0; i < 4; i++ {
		i := i
		l.Listen(func() { calls = append(calls, i) })
	}
	l.Invoke()
	assert.Equal(t, []int{3, 2, 1, 0}, calls)
}

func TestListenerInvokeEmptyIsNoop(t *testing.T) {
	var l Listener
	assert.NotPanics(t, func() {
		l.Invoke()
		l.InvokeUnsafe()
	})
	var a Any[string]
	assert.NotPanics(t, func() {
		a.Invoke("x")
		a.InvokeUnsafe("x")
	})
}

func TestListenerInvokePrunesStale(t *testing.T) {
	l := NewListener()
	calls := 0
	for i := 0; i < 5; i++ {
		l.Listen(func() { calls++ })
	}
	stale := l.Listen(func() { calls += 100 })
	stale.Release()
	l.Add(nil, true)

	require.Equal(t, 7, l.Count())
	l.Invoke()
	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, l.Count())
	assert.False(t, l.Contains(stale))
}

func TestAnyInvokeDeliversValue(t *testing.T) {
	l := NewAny[int]()
	var got []int
	l.Listen(func(v int) { got = append(got, v) })
	l.Listen(func(v int) { got = append(got, v*10) })
	l.Invoke(3)
	assert.Equal(t, []int{30, 3}, got)
}

func TestAnyInvokePrunesStale(t *testing.T) {
	l := NewAny[int]()
	calls := 0
	live := NewFunc(func(int) { calls++ })
	stale := NewFunc(func(int) { calls += 100 })
	l.Add(live, true)
	l.Add(stale, true)
	l.Add(live, true)
	stale.Release()

	l.Invoke(1)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, l.Count())
	assert.False(t, l.Contains(stale))
}

func TestAnyUnsafeMatchesSafeForLiveListeners(t *testing.T) {
	record := func(invoke func(*Any[int], int)) []int {
		l := NewAny[int]()
		var got []int
		for i := 0; i < 6; i++ {
			i := i
			l.Listen(func(v int) { got = append(got, v+i) })
		}
		invoke(l, 10)
		return got
	}
	safe := record(func(l *Any[int], v int) { l.Invoke(v) })
	unsafe := record(func(l *Any[int], v int) { l.InvokeUnsafe(v) })
	assert.Equal(t, safe, unsafe)
}

func TestAnyUnsafeKeepsStaleEntries(t *testing.T) {
	if debugChecks {
		t.Skip("stale entries panic under observerdebug")
	}
	l := NewAny[int]()
	calls := 0
	stale := l.Listen(func(int) { calls++ })
	l.Listen(func(int) { calls++ })
	stale.Release()

	l.InvokeUnsafe(1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, l.Count())
}

func TestAnyDuplicateHandleInvokedTwice(t *testing.T) {
	l := NewAny[int]()
	calls := 0
	h := NewFunc(func(int) { calls++ })
	l.Add(h, true)
	l.Add(h, true)
	assert.False(t, l.Add(h, false))
	l.Invoke(0)
	assert.Equal(t, 2, calls)
}

func TestAnyListenerRemovesItselfDuringInvoke(t *testing.T) {
	l := NewAny[int]()
	calls := 0
	first := l.Listen(func(int) { calls++ })
	var self *Func[int]
	self = l.Listen(func(int) {
		calls++
		l.Remove(self)
	})
	l.Listen(func(int) { calls++ })

	l.Invoke(0)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, l.Count())
	assert.True(t, l.Contains(first))
	assert.False(t, l.Contains(self))
}

func TestAnyListenerRemovesLowerEntriesDuringInvoke(t *testing.T) {
	l := NewAny[int]()
	var calls []string
	a := l.Listen(func(int) { calls = append(calls, "a") })
	b := l.Listen(func(int) { calls = append(calls, "b") })
	l.Listen(func(int) {
		calls = append(calls, "c")
		l.Remove(a)
		l.Remove(b)
	})
	assert.NotPanics(t, func() { l.Invoke(0) })
	require.NotEmpty(t, calls)
	assert.Equal(t, "c", calls[0])
	assert.NotContains(t, calls, "a")
	assert.NotContains(t, calls, "b")
	assert.Equal(t, 1, l.Count())
}

type owner struct {
	payload [64]byte
	total   int
}

func TestBindStaleOnceOwnerCollected(t *testing.T) {
	l := NewAny[int]()
	o := &owner{}
	h := Bind(o, func(o *owner, v int) { o.total += v })
	l.Add(h, true)

	l.Invoke(2)
	assert.Equal(t, 2, o.total)
	assert.True(t, h.Live())

	o = nil
	runtime.GC()
	runtime.GC()

	assert.False(t, h.Live())
	l.Invoke(2)
	assert.Equal(t, 0, l.Count())
}

func TestBindNilOwnerIsStale(t *testing.T) {
	h := Bind[owner, int](nil, func(*owner, int) {})
	assert.False(t, h.Live())
	a := BindAction[owner](nil, func(*owner) {})
	assert.False(t, a.Live())
}

func TestBindActionCallsOwner(t *testing.T) {
	o := &owner{}
	a := BindAction(o, func(o *owner) { o.total++ })
	l := NewListener(a)
	l.Invoke()
	l.InvokeUnsafe()
	assert.Equal(t, 2, o.total)
	runtime.KeepAlive(o)
}

func TestReleasedHandleCallIsNoop(t *testing.T) {
	calls := 0
	h := NewFunc(func(int) { calls++ })
	h.Release()
	h.Call(1)
	var nilHandle *Func[int]
	nilHandle.Call(1)
	nilHandle.Release()
	assert.Equal(t, 0, calls)
	assert.False(t, nilHandle.Live())
}

func BenchmarkAnyInvoke(b *testing.B) {
	l := NewAny[int]()
	for i := 0; i < 1000; i++ {
		l.Listen(func(int) {})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Invoke(i)
	}
}

func BenchmarkAnyInvokeUnsafe(b *testing.B) {
	l := NewAny[int]()
	for i := 0; i < 1000; i++ {
		l.Listen(func(int) {})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InvokeUnsafe(i)
	}
}
