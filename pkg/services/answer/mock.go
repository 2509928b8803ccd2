package answer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/liut/askpad/pkg/models/qa"
)

const (
	dftMockTemplate = "Mocked answer response for: %s"
	dftMockLatency  = time.Millisecond * 500
)

type mockClient struct {
	template string
	latency  time.Duration
}

// NewMock returns the canned generator; tpl may tune the template and
// the simulated latency.
func NewMock(tpl *qa.Mock) Asker {
	c := &mockClient{
		template: dftMockTemplate,
		latency:  dftMockLatency,
	}
	if tpl != nil {
		if len(tpl.Template) > 0 {
			c.template = tpl.Template
		}
		if tpl.LatencyMs > 0 {
			c.latency = time.Duration(tpl.LatencyMs) * time.Millisecond
		}
	}
	return c
}

func (c *mockClient) Ask(ctx context.Context, question string) (string, error) {
	if err := checkQuestion(question); err != nil {
		return "", err
	}

	select {
	case <-time.After(c.latency):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if strings.Contains(c.template, "%s") {
		return fmt.Sprintf(c.template, question), nil
	}
	return c.template, nil
}
