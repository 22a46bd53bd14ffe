// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package ping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := NewSession("example.test", IPv6)
	assert.Equal(t, "example.test", s.Host)
	assert.Equal(t, IPv6.Name, s.Family.Name)
	assert.Equal(t, 10, s.Count)
	assert.Equal(t, 56, s.DataLen)
	assert.Equal(t, time.Second, s.Delay)
	assert.Equal(t, time.Second, s.Timeout)
	assert.NoError(t, s.Validate())
}

func TestSession_Validate(t *testing.T) {
	valid := NewSession("example.test", IPv4)

	tests := []struct {
		name    string
		mutate  func(s *Session)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Session) {}},
		{name: "smallest count", mutate: func(s *Session) { s.Count = 1 }},
		{name: "largest count", mutate: func(s *Session) { s.Count = MaxCount }},
		{name: "empty payload", mutate: func(s *Session) { s.DataLen = 0 }},
		{name: "largest payload", mutate: func(s *Session) { s.DataLen = MaxDataLen }},
		{name: "zero delay and timeout", mutate: func(s *Session) { s.Delay, s.Timeout = 0, 0 }},
		{name: "empty host", mutate: func(s *Session) { s.Host = "" }, wantErr: true},
		{name: "unknown family", mutate: func(s *Session) { s.Family = Family{} }, wantErr: true},
		{name: "zero count", mutate: func(s *Session) { s.Count = 0 }, wantErr: true},
		{name: "count too large", mutate: func(s *Session) { s.Count = MaxCount + 1 }, wantErr: true},
		{name: "negative payload", mutate: func(s *Session) { s.DataLen = -1 }, wantErr: true},
		{name: "payload too large", mutate: func(s *Session) { s.DataLen = MaxDataLen + 1 }, wantErr: true},
		{name: "negative delay", mutate: func(s *Session) { s.Delay = -time.Second }, wantErr: true},
		{name: "negative timeout", mutate: func(s *Session) { s.Timeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSession)
				return
			}
			assert.NoError(t, err)
		})
	}
}
