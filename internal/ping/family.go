// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// IANA protocol numbers of ICMP and ICMPv6.
const (
	protoICMP   = 1
	protoICMPv6 = 58
)

// echoHeaderLen is the size of the echo header:
// type, code, checksum, id and sequence number.
const echoHeaderLen = 8

// Family describes everything the engine needs to know about an address family.
type Family struct {
	// Name is a human readable name of the family.
	Name string
	// Network is the resolver network, "ip4" or "ip6".
	Network string
	// Proto is the IANA protocol number of the ICMP flavor.
	Proto int
	// Request is the echo request message type.
	Request icmp.Type
	// Reply is the echo reply message type.
	Reply icmp.Type
	// HeaderLen is the size of the echo header in bytes.
	HeaderLen int
	// RawNetwork is the network of a privileged raw socket.
	RawNetwork string
	// DatagramNetwork is the network of an unprivileged datagram socket.
	DatagramNetwork string
	// ListenAddr is the wildcard address sockets are bound to.
	ListenAddr string
}

var (
	// IPv4 is the ICMP echo family.
	IPv4 = Family{
		Name:            "ipv4",
		Network:         "ip4",
		Proto:           protoICMP,
		Request:         ipv4.ICMPTypeEcho,
		Reply:           ipv4.ICMPTypeEchoReply,
		HeaderLen:       echoHeaderLen,
		RawNetwork:      "ip4:icmp",
		DatagramNetwork: "udp4",
		ListenAddr:      "0.0.0.0",
	}
	// IPv6 is the ICMPv6 echo family.
	IPv6 = Family{
		Name:            "ipv6",
		Network:         "ip6",
		Proto:           protoICMPv6,
		Request:         ipv6.ICMPTypeEchoRequest,
		Reply:           ipv6.ICMPTypeEchoReply,
		HeaderLen:       echoHeaderLen,
		RawNetwork:      "ip6:ipv6-icmp",
		DatagramNetwork: "udp6",
		ListenAddr:      "::",
	}
)

// FamilyFor returns the family of the given address.
func FamilyFor(addr netip.Addr) Family {
	if addr.Unmap().Is4() {
		return IPv4
	}
	return IPv6
}

// String returns the family name.
func (f Family) String() string {
	return f.Name
}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	return f.Proto == protoICMP || f.Proto == protoICMPv6
}

// Contains reports whether addr belongs to the family.
func (f Family) Contains(addr netip.Addr) bool {
	if !addr.IsValid() {
		return false
	}
	if f.Proto == protoICMPv6 {
		return addr.Is6() && !addr.Is4In6()
	}
	return addr.Unmap().Is4()
}

// Header is the decoded echo header of a received message.
type Header struct {
	Type     icmp.Type
	Code     uint8
	Checksum uint16
	ID       uint16
	Seq      uint16
}

// Marshal encodes an echo request with the given id, sequence number and payload.
// The IPv4 checksum is calculated; the ICMPv6 checksum is left to the kernel.
func (f Family) Marshal(id, seq uint16, payload []byte) ([]byte, error) {
	msg := icmp.Message{
		Type: f.Request,
		Code: 0,
		Body: &icmp.Echo{
			ID:   int(id),
			Seq:  int(seq),
			Data: payload,
		},
	}
	b, err := msg.Marshal(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s echo request: %w", f.Name, err)
	}
	return b, nil
}

// Decode splits a received message into its echo header and payload.
// The id and sequence number are only meaningful for echo messages.
func (f Family) Decode(b []byte) (Header, []byte, error) {
	if len(b) < f.HeaderLen {
		return Header{}, nil, fmt.Errorf("%w: %d bytes", ErrShortReply, len(b))
	}
	h := Header{
		Type:     f.messageType(b[0]),
		Code:     b[1],
		Checksum: binary.BigEndian.Uint16(b[2:4]),
		ID:       binary.BigEndian.Uint16(b[4:6]),
		Seq:      binary.BigEndian.Uint16(b[6:8]),
	}
	return h, b[f.HeaderLen:], nil
}

// IsReply reports whether t is the echo reply type of the family.
func (f Family) IsReply(t icmp.Type) bool {
	return t == f.Reply
}

func (f Family) messageType(b byte) icmp.Type {
	if f.Proto == protoICMPv6 {
		return ipv6.ICMPType(b)
	}
	return ipv4.ICMPType(b)
}

// TypeNumber returns the numeric value of an ICMP or ICMPv6 message type.
func TypeNumber(t icmp.Type) int {
	switch t := t.(type) {
	case ipv4.ICMPType:
		return int(t)
	case ipv6.ICMPType:
		return int(t)
	default:
		return -1
	}
}
