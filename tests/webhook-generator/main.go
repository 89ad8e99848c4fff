package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/signature"

	"github.com/joho/godotenv"
)

type Data struct {
	ID string `json:"id"`
}

type Notification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   Data   `json:"data"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// generateRequest подписывает уведомление; часть запросов намеренно просрочена или подделана
func generateRequest(url string, secret []byte, paymentID string) (*http.Request, string) {
	body, _ := json.Marshal(Notification{Type: "payment", Action: "payment.updated", Data: Data{ID: paymentID}})

	requestID := randomString(16)
	ts := time.Now()
	kind := "valid"
	switch rand.Intn(10) {
	case 0:
		ts = ts.Add(-time.Hour)
		kind = "expired"
	case 1:
		requestID += "x"
		kind = "tampered"
	}

	sig := signature.Sign(secret, paymentID, requestID, ts.Unix())
	if kind == "tampered" {
		requestID = requestID[:len(requestID)-1]
	}

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.HeaderSignature, sig)
	req.Header.Set(signature.HeaderRequestID, requestID)
	return req, kind
}

func main() {
	godotenv.Load()

	url := "http://localhost:8080/webhooks/payments"
	if v, ok := os.LookupEnv("WEBHOOK_URL"); ok {
		url = v
	}
	secret := []byte(os.Getenv("WEBHOOK_SECRET"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	client := &http.Client{Timeout: 30 * time.Second}
	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			paymentID := strconv.Itoa(1_000_000 + rand.Intn(1000))
			req, kind := generateRequest(url, secret, paymentID)
			resp, err := client.Do(req.WithContext(ctx))
			if err != nil {
				log.Println("request failed:", err)
				continue
			}
			resp.Body.Close()
			log.Printf("webhook %s (%s) -> %s", paymentID, kind, resp.Status)
		case <-ctx.Done():
			return
		}
	}
}
