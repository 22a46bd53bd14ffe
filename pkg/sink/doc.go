// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package sink contains the consumers of ping session events: classic console
// output, structured logs, prometheus metrics, OpenTelemetry span events and a
// machine readable session summary.
package sink
