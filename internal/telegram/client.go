package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client issues calls against the Bot API control surface.
type Client struct {
	apiURL string
	token  string
	http   *http.Client
}

func NewClient(apiURL, token string) *Client {
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SetWebhook registers webhookURL as the bot's update sink and returns
// the provider's raw JSON response. No retry, no interpretation of the
// provider's acceptance beyond pass-through.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/bot%s/setWebhook", c.apiURL, c.token)

	form := url.Values{}
	form.Set("url", webhookURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build setWebhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("setWebhook call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read setWebhook response: %w", err)
	}

	return body, nil
}
