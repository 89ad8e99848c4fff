// Package signature проверяет подпись вебхуков платёжного шлюза.
//
// Шлюз подписывает манифест "id:<payment id>;request-id:<x-request-id>;ts:<ts>;"
// HMAC-SHA256 и присылает "x-signature: ts=<ts>,v1=<hex digest>".
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const (
	HeaderSignature = "x-signature"
	HeaderRequestID = "x-request-id"

	DefaultReplayWindow = 1800 * time.Second

	// ts больше этого значения в миллисекундах
	millisThreshold = 10_000_000_000
)

// сравнение за постоянное время, подменяется только в тестах
var digestsEqual = hmac.Equal

type Headers struct {
	Signature string
	RequestID string
}

// Verify проверяет, что в headers валидная подпись paymentID, выданная не раньше now-window.
// На любую ошибку возвращает false.
func Verify(h Headers, paymentID string, secret []byte, now time.Time, window time.Duration) bool {
	if h.RequestID == "" || paymentID == "" || len(secret) == 0 {
		return false
	}

	ts, digest, ok := parseSignature(h.Signature)
	if !ok {
		return false
	}

	issued, ok := parseTimestamp(ts)
	if !ok {
		return false
	}
	if skew := now.Unix() - issued; skew > int64(window.Seconds()) || -skew > int64(window.Seconds()) {
		return false
	}

	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(Manifest(paymentID, h.RequestID, ts)))

	return digestsEqual(mac.Sum(nil), want)
}

// Manifest строит строку, которую подписывает шлюз.
func Manifest(paymentID, requestID, ts string) string {
	return "id:" + paymentID + ";request-id:" + requestID + ";ts:" + ts + ";"
}

// Sign возвращает значение заголовка x-signature для частей манифеста.
func Sign(secret []byte, paymentID, requestID string, ts int64) string {
	tsStr := strconv.FormatInt(ts, 10)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(Manifest(paymentID, requestID, tsStr)))
	return "ts=" + tsStr + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func parseSignature(header string) (ts, v1 string, ok bool) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1, ts != "" && v1 != ""
}

func parseTimestamp(ts string) (int64, bool) {
	v, err := strconv.ParseInt(ts, 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	if v > millisThreshold {
		v /= 1000
	}
	return v, true
}

// Verifier связывает Verify с секретом, окном повтора и часами.
type Verifier struct {
	secret []byte
	window time.Duration
	now    func() time.Time
}

func NewVerifier(secret string, window time.Duration) *Verifier {
	if window <= 0 {
		window = DefaultReplayWindow
	}
	return &Verifier{
		secret: []byte(secret),
		window: window,
		now:    time.Now,
	}
}

// WithClock подменяет часы, для тестов.
func (v *Verifier) WithClock(now func() time.Time) *Verifier {
	v.now = now
	return v
}

func (v *Verifier) Verify(h Headers, paymentID string) bool {
	return Verify(h, paymentID, v.secret, v.now(), v.window)
}
