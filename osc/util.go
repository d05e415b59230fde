package osc

import (
	"sync"
)

// bPool holds marshal and receive buffers, all sized to the transport
// policy bound.
var bPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, MaxPacketSize)
		return &b
	},
}
