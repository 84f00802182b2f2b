package entity

const (
	// DestinationPort is the only UDP port datagrams are ever sent to.
	DestinationPort = 9495
	// HTTPPort is the port the API server listens on.
	HTTPPort = 9490
)

// Packet is one datagram request: a target host and the literal payload.
type Packet struct {
	Host    string
	Message string
}

// Payload returns the bytes written to the socket. No framing is added.
func (p Packet) Payload() []byte {
	return []byte(p.Message)
}
