// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package transport

import "errors"

var (
	// ErrUnknownMode is returned for an unsupported socket mode.
	ErrUnknownMode = errors.New("unknown socket mode")
	// ErrNoAddress is returned when a host has no address of the requested family.
	ErrNoAddress = errors.New("no address of the requested family")
	// ErrFamilyMismatch is returned when an address literal belongs to another family.
	ErrFamilyMismatch = errors.New("address does not belong to the requested family")
)
