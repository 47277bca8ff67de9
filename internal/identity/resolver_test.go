package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_StrategyPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		signals       Signals
		wantVisitorID string
		wantSync      bool
	}{
		{
			name: "쿠키 토큰이 최우선",
			signals: Signals{
				CookieToken: "user_1700000000000_cookie",
				HeaderToken: "user_1700000000000_header",
			},
			wantVisitorID: "user_1700000000000_cookie",
			wantSync:      false,
		},
		{
			name: "쿠키가 없으면 헤더 토큰, 쿠키 동기화 지시",
			signals: Signals{
				HeaderToken: "user_1700000000000_header",
			},
			wantVisitorID: "user_1700000000000_header",
			wantSync:      true,
		},
		{
			name: "잘못된 쿠키는 건너뛰고 헤더로",
			signals: Signals{
				CookieToken: "session_abc",
				HeaderToken: "user_1700000000000_header",
			},
			wantVisitorID: "user_1700000000000_header",
			wantSync:      true,
		},
		{
			name: "토큰이 전혀 없으면 IP+UA 폴백",
			signals: Signals{
				ForwardedFor: "203.0.113.9, 10.0.0.1",
				UserAgent:    "Mozilla/5.0",
			},
			wantVisitorID: "203.0.113.9_Mozilla/5.0",
			wantSync:      false,
		},
		{
			name: "폴백은 subject 범위로 좁혀진다",
			signals: Signals{
				RealIP:       "198.51.100.7",
				UserAgent:    "curl/8.0",
				SubjectScope: "b2c3",
			},
			wantVisitorID: "198.51.100.7_curl/8.0_b2c3",
			wantSync:      false,
		},
		{
			name:          "신호가 하나도 없어도 값은 나온다",
			signals:       Signals{},
			wantVisitorID: "unknown_",
			wantSync:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.signals)
			assert.Equal(t, tt.wantVisitorID, res.VisitorID)
			assert.Equal(t, tt.wantSync, res.SyncCookie)
		})
	}
}

func TestResolve_UserAgentTruncation(t *testing.T) {
	res := Resolve(Signals{
		RealIP:    "198.51.100.7",
		UserAgent: strings.Repeat("x", 100),
	})
	assert.Equal(t, "198.51.100.7_"+strings.Repeat("x", maxSignatureLen), res.VisitorID)
}

func TestResolve_ForwardedForFirstEntryWins(t *testing.T) {
	res := Resolve(Signals{
		ForwardedFor: "  203.0.113.9 , 10.0.0.1, 172.16.0.1",
		RealIP:       "198.51.100.7",
		UserAgent:    "ua",
	})
	assert.True(t, strings.HasPrefix(res.VisitorID, "203.0.113.9_"))
}

func TestResolveForWrite_MintsTokenWhenAnonymous(t *testing.T) {
	res := ResolveForWrite(Signals{
		ForwardedFor: "203.0.113.9",
		UserAgent:    "Mozilla/5.0",
	})

	assert.True(t, res.SyncCookie, "minted identity must be synced to the cookie")
	assert.True(t, IsValidToken(res.VisitorID))
	assert.True(t, strings.HasPrefix(res.VisitorID, TokenPrefix))
}

func TestResolveForWrite_KeepsExistingToken(t *testing.T) {
	res := ResolveForWrite(Signals{CookieToken: "user_1700000000000_cookie"})
	assert.Equal(t, "user_1700000000000_cookie", res.VisitorID)
	assert.False(t, res.SyncCookie)
}

func TestNewToken_Shape(t *testing.T) {
	token := NewToken()
	assert.True(t, strings.HasPrefix(token, TokenPrefix))

	parts := strings.Split(strings.TrimPrefix(token, TokenPrefix), "_")
	assert.Len(t, parts, 2, "token is user_<timestamp>_<random>")
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])

	assert.NotEqual(t, token, NewToken(), "consecutive tokens must differ")
}

func TestIsValidToken(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"user_1700000000000_abc123", true},
		{"user_x", true},
		{"user_", false},
		{"", false},
		{"visitor_123", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidToken(tt.value), "value %q", tt.value)
	}
}
