package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080/payments/status/"
	fixedID = 1
)

func main() {
	token := os.Getenv("TOKEN")
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(token string) {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = rand.Intn(1_000_000) + 2
	}

	url := baseURL + strconv.Itoa(id)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
