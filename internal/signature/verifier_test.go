package signature

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("webhook-secret")

func TestVerify(t *testing.T) {
	now := time.Unix(1_760_000_000, 0)
	valid := Sign(testSecret, "123456", "req-1", now.Unix())

	testCases := []struct {
		name      string
		headers   Headers
		paymentID string
		secret    []byte
		window    time.Duration
		want      bool
	}{
		{
			name:      "valid signature",
			headers:   Headers{Signature: valid, RequestID: "req-1"},
			paymentID: "123456",
			want:      true,
		},
		{
			name:      "valid signature with spaces",
			headers:   Headers{Signature: strings.ReplaceAll(valid, ",", " , "), RequestID: "req-1"},
			paymentID: "123456",
			want:      true,
		},
		{
			name:      "timestamp in milliseconds",
			headers:   Headers{Signature: Sign(testSecret, "123456", "req-1", now.UnixMilli()), RequestID: "req-1"},
			paymentID: "123456",
			want:      true,
		},
		{
			name:      "expired timestamp",
			headers:   Headers{Signature: Sign(testSecret, "123456", "req-1", now.Add(-time.Hour).Unix()), RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "timestamp from the future",
			headers:   Headers{Signature: Sign(testSecret, "123456", "req-1", now.Add(time.Hour).Unix()), RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "timestamp at window edge",
			headers:   Headers{Signature: Sign(testSecret, "123456", "req-1", now.Add(-1800*time.Second).Unix()), RequestID: "req-1"},
			paymentID: "123456",
			want:      true,
		},
		{
			name:      "narrow window rejects",
			headers:   Headers{Signature: Sign(testSecret, "123456", "req-1", now.Add(-2*time.Minute).Unix()), RequestID: "req-1"},
			paymentID: "123456",
			window:    time.Minute,
			want:      false,
		},
		{
			name:      "tampered digest",
			headers:   Headers{Signature: tamperLastChar(valid), RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "other payment id",
			headers:   Headers{Signature: valid, RequestID: "req-1"},
			paymentID: "654321",
			want:      false,
		},
		{
			name:      "other request id",
			headers:   Headers{Signature: valid, RequestID: "req-2"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "wrong secret",
			headers:   Headers{Signature: valid, RequestID: "req-1"},
			paymentID: "123456",
			secret:    []byte("other"),
			want:      false,
		},
		{
			name:      "missing request id",
			headers:   Headers{Signature: valid},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "missing signature",
			headers:   Headers{RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "missing v1",
			headers:   Headers{Signature: "ts=" + strconv.FormatInt(now.Unix(), 10), RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "malformed ts",
			headers:   Headers{Signature: "ts=abc,v1=00ff", RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "non hex digest",
			headers:   Headers{Signature: "ts=" + strconv.FormatInt(now.Unix(), 10) + ",v1=zz", RequestID: "req-1"},
			paymentID: "123456",
			want:      false,
		},
		{
			name:      "missing payment id",
			headers:   Headers{Signature: valid, RequestID: "req-1"},
			paymentID: "",
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			secret := tc.secret
			if secret == nil {
				secret = testSecret
			}
			window := tc.window
			if window == 0 {
				window = DefaultReplayWindow
			}
			assert.Equal(t, tc.want, Verify(tc.headers, tc.paymentID, secret, now, window))
		})
	}
}

func TestManifest(t *testing.T) {
	assert.Equal(t, "id:42;request-id:abc;ts:1700000000;", Manifest("42", "abc", "1700000000"))
}

func TestVerifier_UsesClock(t *testing.T) {
	issued := time.Unix(1_760_000_000, 0)
	header := Headers{Signature: Sign(testSecret, "1", "r", issued.Unix()), RequestID: "r"}

	v := NewVerifier(string(testSecret), 30*time.Minute)

	v.WithClock(func() time.Time { return issued.Add(10 * time.Minute) })
	assert.True(t, v.Verify(header, "1"))

	v.WithClock(func() time.Time { return issued.Add(31 * time.Minute) })
	assert.False(t, v.Verify(header, "1"))
}

func tamperLastChar(header string) string {
	last := header[len(header)-1]
	repl := byte('0')
	if last == '0' {
		repl = '1'
	}
	return header[:len(header)-1] + string(repl)
}

func TestVerify_ComparesWholeDigestInConstantTime(t *testing.T) {
	now := time.Unix(1_760_000_000, 0)
	valid := Sign(testSecret, "123456", "req-1", now.Unix())
	digestStart := strings.Index(valid, "v1=") + 3

	type comparison struct{ got, want []byte }
	var calls []comparison
	digestsEqual = func(got, want []byte) bool {
		calls = append(calls, comparison{got, want})
		return hmac.Equal(got, want)
	}
	t.Cleanup(func() { digestsEqual = hmac.Equal })

	testCases := []struct {
		name      string
		signature string
		want      bool
	}{
		{name: "valid", signature: valid, want: true},
		{name: "first byte differs", signature: flipHexAt(valid, digestStart)},
		{name: "last byte differs", signature: tamperLastChar(valid)},
		{name: "truncated digest", signature: valid[:len(valid)-2]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls = nil
			ok := Verify(Headers{Signature: tc.signature, RequestID: "req-1"}, "123456", testSecret, now, DefaultReplayWindow)
			assert.Equal(t, tc.want, ok)

			require.Len(t, calls, 1, "digest must be checked by a single constant-time comparison")
			assert.Len(t, calls[0].got, sha256.Size)
			assert.Equal(t, tc.want, bytes.Equal(calls[0].got, calls[0].want))
		})
	}
}

func flipHexAt(s string, i int) string {
	c := byte('0')
	if s[i] == '0' {
		c = '1'
	}
	return s[:i] + string(c) + s[i+1:]
}

func benchmarkVerify(b *testing.B, tamper func(string) string) {
	now := time.Unix(1_760_000_000, 0)
	header := Headers{Signature: tamper(Sign(testSecret, "123456", "req-1", now.Unix())), RequestID: "req-1"}
	b.ResetTimer()
	for b.Loop() {
		Verify(header, "123456", testSecret, now, DefaultReplayWindow)
	}
}

// время должно совпадать с BenchmarkVerify_LastByteDiffers
func BenchmarkVerify_FirstByteDiffers(b *testing.B) {
	benchmarkVerify(b, func(h string) string {
		return flipHexAt(h, strings.Index(h, "v1=")+3)
	})
}

func BenchmarkVerify_LastByteDiffers(b *testing.B) {
	benchmarkVerify(b, tamperLastChar)
}
