package domain

// Endpoint is a single probe target from the endpoints file.
// The list is immutable after load; there is no reload.
type Endpoint struct {
	Name    string            `yaml:"name" json:"name"`
	URL     string            `yaml:"url" json:"url"`
	Method  string            `yaml:"method" json:"method,omitempty"`
	Headers map[string]string `yaml:"headers" json:"headers,omitempty"`
	Body    string            `yaml:"body" json:"body,omitempty"`
}

// Outcome is the result of probing one endpoint once.
type Outcome struct {
	Domain     string  `json:"domain"`
	Success    bool    `json:"success"`
	HTTPStatus int     `json:"http_status,omitempty"`
	LatencyMS  float64 `json:"latency_ms"`
	Reason     string  `json:"reason,omitempty"`
}
