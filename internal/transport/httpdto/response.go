package httpdto

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// PingResponse reports the upstream diagnostic. Count is only present on
// success, Detail only on failure.
type PingResponse struct {
	OK     bool   `json:"ok"`
	Count  *int   `json:"count,omitempty"`
	Detail string `json:"detail,omitempty"`
}
