package server

// IndexResponse is the fixed payload served on GET /.
type IndexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthResponse is the fixed payload served on GET /health. The external
// load balancer polls it as a liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
