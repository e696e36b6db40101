package impl

import (
	"go.dedis.ch/arp/protocol"
)

var _ protocol.Protocol = (*node)(nil)

// NewProtocol returns a protocol instance owning its own state.
func NewProtocol(conf protocol.Configuration) protocol.Protocol {
	return newNode(conf)
}
