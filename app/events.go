package app

import (
	"errors"
	"time"

	"github.com/kilianp07/observer/core/discovery"
	"github.com/kilianp07/observer/core/events"
)

// Location is the discovery location of the demo payloads.
const Location = "app"

// Tick is emitted by Host.Run at every demo interval.
type Tick struct {
	events.Base
	Seq int
	At  time.Time
}

// Notice carries a lifecycle message of the host.
type Notice struct {
	events.Base
	Message string
}

func init() {
	if err := RegisterEvents(discovery.Default()); err != nil {
		panic(err)
	}
}

// RegisterEvents adds the demo payloads to c under Location.
func RegisterEvents(c *discovery.Catalog) error {
	return errors.Join(
		discovery.Register[Tick](c, Location),
		discovery.Register[Notice](c, Location),
	)
}
