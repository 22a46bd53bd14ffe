// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

const (
	// patternFirst is the first byte of the payload pattern (space).
	patternFirst = 0x20
	// patternLast is the last byte of the payload pattern (tilde).
	patternLast = 0x7e
	// patternLen is the number of bytes before the pattern repeats.
	patternLen = patternLast - patternFirst + 1
)

// GeneratePayload returns n bytes cycling through the printable ASCII range,
// starting at 0x20 and wrapping back to 0x20 after 0x7e.
func GeneratePayload(n int) []byte {
	b := make([]byte, max(n, 0))
	for i := range b {
		b[i] = patternByte(i)
	}
	return b
}

// VerifyPayload reports whether b is exactly the pattern of length n
// produced by [GeneratePayload].
func VerifyPayload(b []byte, n int) bool {
	if len(b) != n {
		return false
	}
	for i, c := range b {
		if c != patternByte(i) {
			return false
		}
	}
	return true
}

func patternByte(i int) byte {
	return byte(patternFirst + i%patternLen)
}
