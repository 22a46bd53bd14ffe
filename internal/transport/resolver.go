// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/telekom/sparrow-ping/internal/helper"
	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
)

// lookuper looks up the addresses of a host.
type lookuper interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

var _ ping.Resolver = (*Resolver)(nil)

// Resolver resolves ping targets with the Go resolver.
type Resolver struct {
	lookup lookuper
	retry  helper.RetryConfig
}

// NewResolver returns a resolver that retries failed lookups as configured.
func NewResolver(rc helper.RetryConfig) *Resolver {
	return &Resolver{
		lookup: &net.Resolver{PreferGo: true},
		retry:  rc,
	}
}

// Resolve returns the first address of host that belongs to f.
// Address literals are returned without a lookup.
func (r *Resolver) Resolve(ctx context.Context, host string, f ping.Family) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		if !f.Contains(addr) {
			return netip.Addr{}, fmt.Errorf("%w: %s is not %s", ErrFamilyMismatch, addr, f)
		}
		return normalize(addr, f), nil
	}

	log := logger.FromContext(ctx).With("host", host, "family", f.Name)
	var addrs []netip.Addr
	lookup := helper.Retry(func(ctx context.Context) (err error) {
		addrs, err = r.lookup.LookupNetIP(ctx, f.Network, host)
		return err
	}, r.retry)
	if err := lookup(ctx); err != nil {
		log.DebugContext(ctx, "Failed to look up host", "error", err)
		return netip.Addr{}, fmt.Errorf("failed to look up %q: %w", host, err)
	}

	for _, addr := range addrs {
		if f.Contains(addr) {
			log.DebugContext(ctx, "Resolved host", "addr", addr)
			return normalize(addr, f), nil
		}
	}
	return netip.Addr{}, fmt.Errorf("%w: %q has no %s address", ErrNoAddress, host, f)
}

func normalize(addr netip.Addr, f ping.Family) netip.Addr {
	if f.Network == ping.IPv4.Network {
		return addr.Unmap()
	}
	return addr
}
