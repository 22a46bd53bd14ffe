// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrServerStop is returned when the server could not be shut down gracefully
	ErrServerStop = errors.New("unable to stop the api server")
	// ErrInvalidAddress is returned when no listening address is configured
	ErrInvalidAddress = errors.New("invalid api listening address")
)

// ErrUnsupportedMethod is returned when a route uses an unknown http method
type ErrUnsupportedMethod struct {
	Method string
	Path   string
}

func (e ErrUnsupportedMethod) Error() string {
	return fmt.Sprintf("unsupported method %q for route %s", e.Method, e.Path)
}
