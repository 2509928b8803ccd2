package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	askTimeout = time.Second * 30
	askPath    = "/ask"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer *string `json:"answer"`
	// optional detail carried by failure bodies
	Message string `json:"message"`
	Error   string `json:"error"`
}

type remoteClient struct {
	base    string
	hc      *http.Client
	timeout time.Duration
}

// NewRemote returns a client issuing one POST {base}/ask per question.
func NewRemote(base string) Asker {
	return &remoteClient{
		base:    strings.TrimRight(base, "/"),
		timeout: askTimeout,
		hc: &http.Client{
			Timeout:   askTimeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
	}
}

func (c *remoteClient) Ask(ctx context.Context, question string) (string, error) {
	if err := checkQuestion(question); err != nil {
		return "", err
	}

	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+askPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		if isTimeout(err) {
			logger().Infow("ask timeout", "base", c.base)
			return "", ErrTimeout
		}
		logger().Infow("ask fail", "base", c.base, "err", err)
		return "", fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNetwork, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", newServerError(res.StatusCode, res.Status, b)
	}

	var ar askResponse
	if err = json.Unmarshal(b, &ar); err != nil || ar.Answer == nil {
		logger().Infow("ask malformed body", "status", res.StatusCode, "body", len(b))
		return "", ErrMalformed
	}
	return *ar.Answer, nil
}

// newServerError surfaces the status and, when present, the message or
// error field of a JSON failure body, or the raw text otherwise.
func newServerError(code int, status string, body []byte) error {
	var ar askResponse
	detail := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &ar); err == nil {
		if len(ar.Message) > 0 {
			detail = ar.Message
		} else if len(ar.Error) > 0 {
			detail = ar.Error
		}
	}
	if len(detail) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrServer, status, detail)
	}
	return fmt.Errorf("%w: %s", ErrServer, status)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
