package outbound

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// UDPTransport opens a fresh socket for every datagram. Sockets are never
// pooled or reused.
type UDPTransport struct {
	network string
	dialer  net.Dialer
}

// NewUDPTransport returns an IPv4 transport.
func NewUDPTransport() *UDPTransport {
	return &UDPTransport{network: "udp4"}
}

// Send resolves host, writes payload once to host:port and closes the socket.
func (t *UDPTransport) Send(ctx context.Context, host string, port int, payload []byte) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	conn, err := t.dialer.DialContext(ctx, t.network, addr)
	if err != nil {
		return fmt.Errorf("UDP error: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		//nolint:stylecheck // operator-facing text
		return fmt.Errorf("Failed to send: %w", err)
	}

	return nil
}
