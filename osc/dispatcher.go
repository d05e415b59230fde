package osc

import (
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Method is an interface for OSC Methods.
type Method interface {
	HandleMessage(msg *Message)
}

// MethodFunc implements the Method interface. Type definition for an OSC Method function.
type MethodFunc func(msg *Message)

// HandleMessage calls itself with the given OSC Message. Implements the Method interface.
func (f MethodFunc) HandleMessage(msg *Message) {
	f(msg)
}

// Dispatcher routes received OSC Packets to Methods registered for their
// Address. Bundles are scheduled according to their time tag; an immediate
// time tag dispatches right away.
type Dispatcher struct {
	// Logger receives panics recovered from methods during deferred bundle
	// dispatch. Optional.
	Logger *zerolog.Logger

	methods map[string]Method
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{methods: make(map[string]Method)}
}

// AddMethod adds a new OSC Method for the given OSC Address.
func (d *Dispatcher) AddMethod(addr string, method Method) error {
	if strings.ContainsAny(addr, "*?,[]{}# ") {
		return fmt.Errorf("AddMethod: OSC Method may not contain any characters in \"*?,[]{}# \"")
	}

	if d.methods == nil {
		d.methods = make(map[string]Method)
	}

	if _, ok := d.methods[addr]; ok {
		return fmt.Errorf("AddMethod: OSC Method %q exists already", addr)
	}

	d.methods[addr] = method
	return nil
}

// AddMethodFunc allows you to just pass a MethodFunc.
func (d *Dispatcher) AddMethodFunc(addr string, method MethodFunc) error {
	return d.AddMethod(addr, method)
}

// Dispatch dispatches OSC Packets received from a.
func (d *Dispatcher) Dispatch(packet Packet, a net.Addr) {
	switch p := packet.(type) {
	case *Message:
		d.dispatchMessage(p)

	case *Bundle:
		time.AfterFunc(p.Timetag.ExpiresIn(), func() {
			defer d.recoverer(a)
			for _, elem := range p.Elements {
				d.Dispatch(elem, a)
			}
		})
	}
}

func (d *Dispatcher) dispatchMessage(m *Message) {
	r, err := getRegEx(m.Address)
	if err != nil {
		return
	}

	// Addresses are matched segment for segment, so a method only fires
	// when its path depth equals the pattern's.
	r.Longest()
	mParts := len(strings.Split(m.Address, "/"))
	for addr, method := range d.methods {
		if mParts == len(strings.Split(addr, "/")) && r.FindString(addr) == addr {
			method.HandleMessage(m)
		}
	}
}

func (d *Dispatcher) recoverer(a net.Addr) {
	if err := recover(); err != nil {
		evt := d.logger().Error().Interface("panic", err)
		if a != nil {
			evt = evt.Str("remote", a.String())
		}
		evt.Msg("recovered panic in OSC method")
	}
}

func (d *Dispatcher) logger() *zerolog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return &nopLogger
}

// getRegEx returns a regexp.Regexp for the given address pattern.
func getRegEx(pattern string) (*regexp.Regexp, error) {
	r := strings.NewReplacer(
		".", `\.`,
		"(", `\(`,
		")", `\)`,
		"*", "[^/]*",
		"{", "(",
		",", "|",
		"}", ")",
		"?", "[^/]",
		"!", "^",
	)
	pattern = r.Replace(pattern)

	return regexp.Compile(pattern)
}
