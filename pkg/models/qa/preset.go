package qa

// Message is a displayable text with optional id.
type Message struct {
	Content string `json:"content" yaml:"content"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Mock tunes the canned answer generator.
type Mock struct {
	// Template becomes the answer with %s replaced by the question.
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
	// LatencyMs simulates upstream latency before answering.
	LatencyMs int `json:"latencyMs,omitempty" yaml:"latencyMs,omitempty"`
}

// Preset is an optional YAML document tweaking texts and the mock generator.
type Preset struct {
	Welcome *Message `json:"welcome,omitempty" yaml:"welcome,omitempty"`
	Mock    *Mock    `json:"mock,omitempty" yaml:"mock,omitempty"`
}
