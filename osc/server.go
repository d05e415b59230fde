package osc

import (
	"net"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Server represents an OSC server. The server listens on Addr for incoming
// OSC packets and dispatches them.
type Server struct {
	Addr        string
	Dispatcher  *Dispatcher
	ReadTimeout time.Duration

	// Logger receives malformed-packet warnings and recovered handler
	// panics. Optional; when nil nothing is logged.
	Logger *zerolog.Logger
}

var nopLogger = zerolog.Nop()

// ListenAndServe retrieves incoming OSC packets and dispatches the retrieved OSC packets.
func (s *Server) ListenAndServe() error {
	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve retrieves incoming OSC packets from the given connection and dispatches retrieved OSC packets.
// If something goes wrong an error is returned.
func (s *Server) Serve(c net.PacketConn) error {
	if s.Dispatcher == nil {
		s.Dispatcher = NewDispatcher()
	}
	if s.Dispatcher.Logger == nil {
		s.Dispatcher.Logger = s.Logger
	}

	var tempDelay time.Duration
	for {
		p, addr, err := s.readFromConnection(c)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			} else if !ok {
				s.logger().Warn().Err(err).Msg("dropping malformed packet")
				continue
			}
			return err
		}
		tempDelay = 0
		go s.serve(p, addr)
	}
}

func (s *Server) serve(p Packet, a net.Addr) {
	defer func() {
		if err := recover(); err != nil {
			buf := make([]byte, MaxPacketSize)
			buf = buf[:runtime.Stack(buf, false)]
			evt := s.logger().Error().Interface("panic", err).Bytes("stack", buf)
			if a != nil {
				evt = evt.Str("remote", a.String())
			}
			evt.Msg("panic handling packet")
		}
	}()
	s.Dispatcher.Dispatch(p, a)
}

// ReceivePacket reads one OSC packet from the connection and returns it.
func (s *Server) ReceivePacket(c net.PacketConn) (Packet, net.Addr, error) {
	return s.readFromConnection(c)
}

// readFromConnection retrieves OSC packets.
func (s *Server) readFromConnection(c net.PacketConn) (Packet, net.Addr, error) {
	if s.ReadTimeout != 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
	}

	b := bPool.Get().(*[]byte)
	defer bPool.Put(b)

	n, a, err := c.ReadFrom(*b)
	if err != nil {
		return nil, a, err
	}
	bb := make([]byte, n)
	copy(bb, *b)

	p, err := parsePacket(bb)
	return p, a, err
}

func (s *Server) logger() *zerolog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return &nopLogger
}
