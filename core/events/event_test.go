package events

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type joined struct {
	Base
	Name string
}

func TestPayloadsImplementEvent(t *testing.T) {
	var _ Event = joined{}
	var _ Event = NoArgs{}
	assert.True(t, reflect.TypeFor[joined]().Implements(MarkerType))
	assert.False(t, reflect.TypeFor[struct{ Name string }]().Implements(MarkerType))
}

func TestName(t *testing.T) {
	assert.Equal(t, "events.joined", Name(reflect.TypeFor[joined]()))
	assert.Equal(t, "events.NoArgs", Name(reflect.TypeFor[NoArgs]()))
	assert.Equal(t, "<nil>", Name(nil))
}
