package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alucardeht/fasttags/pkg/ft"
)

const (
	nuValidatorURL = "https://validator.w3.org/nu/?out=json"

	remoteTimeout = 5 * time.Second
)

// remoteChecker asks the W3C nu validator whether a minimal fragment using
// the attribute parses without errors.
type remoteChecker struct {
	client *http.Client
	url    string
}

func newRemoteChecker() *remoteChecker {
	return &remoteChecker{
		client: &http.Client{Timeout: remoteTimeout},
		url:    nuValidatorURL,
	}
}

type nuResponse struct {
	Messages []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"messages"`
}

func (rc *remoteChecker) attrAllowed(tag, attr string) (bool, error) {
	fragment := fmt.Sprintf(`<!DOCTYPE html><html lang="en"><head><title>t</title></head><body>%s</body></html>`,
		testFragment(tag, attr))

	req, err := http.NewRequest(http.MethodPost, rc.url, strings.NewReader(fragment))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")

	resp, err := rc.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("validator returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return false, err
	}

	var result nuResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, err
	}

	for _, msg := range result.Messages {
		if msg.Type == "error" {
			return false, nil
		}
	}
	return true, nil
}

func testFragment(tag, attr string) string {
	if ft.VoidElements[tag] {
		return fmt.Sprintf(`<%s %s="test">`, tag, attr)
	}
	return fmt.Sprintf(`<%s %s="test"></%s>`, tag, attr, tag)
}
