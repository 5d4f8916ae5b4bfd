package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiresIn(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", DefaultTTL},
		{"3600", time.Hour},
		{"90", 90 * time.Second},
		{"45s", 45 * time.Second},
		{"30m", 30 * time.Minute},
		{"2h", 2 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{`"2h"`, 2 * time.Hour},
		{" 15m ", 15 * time.Minute},
		{"0", DefaultTTL},
		{"-5", DefaultTTL},
		{"2w", DefaultTTL},
		{"h", DefaultTTL},
		{"1.5h", DefaultTTL},
		{"soon", DefaultTTL},
		{"200000000d", DefaultTTL},
		{"99999999999999", DefaultTTL},
		{"9223372036854775807h", DefaultTTL},
		{"106751d", 106751 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExpiresIn(tt.in))
		})
	}
}
