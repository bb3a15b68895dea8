package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

var linkClient = resty.New().SetTimeout(5 * time.Second)

// ProbeContentURL does a best-effort HEAD request against a material's
// content URL and logs when it looks unreachable. Callers run it in a
// goroutine; a dead link never blocks or fails the mutation.
func ProbeContentURL(url string) {
	if url == "" {
		return
	}

	resp, err := linkClient.R().Head(url)
	if err != nil {
		log.Printf("[LINK-CHECK] %s unreachable: %v", url, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("[LINK-CHECK] %s returned status %d", url, resp.StatusCode())
	}
}
