package notifier

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Bounded so a hung collaborator cannot pin the goroutine.
var callbackClient = &http.Client{Timeout: 10 * time.Second}

// SendWinnerCallback posts the payload to the external messaging
// collaborator. Fire-and-forget: it runs after settlement has committed and
// its failure is logged, never propagated.
func SendWinnerCallback(callbackURL string, payload WinnerCallbackPayload) {
	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal winner callback: %v\n", err)
			return
		}

		req, err := http.NewRequest("POST", callbackURL, bytes.NewBuffer(body))
		if err != nil {
			log.Printf("Failed to create winner callback request: %v\n", err)
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := callbackClient.Do(req)
		if err != nil {
			log.Printf("Winner callback failed: %v\n", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Printf("Winner callback sent to %s\n", callbackURL)
		} else {
			log.Printf("Winner callback returned status %d", resp.StatusCode)
		}
	}()
}
