package handler

import "net/http"

const (
	DataPath   = "/data"
	HealthPath = "/health"
)

type response struct {
	contentType string
	body        []byte
}

// routes is matched against the exact request target, query string
// included, so "/data?x=1" is not found.
var routes = map[string]response{
	DataPath: {
		contentType: "application/json",
		body:        []byte(`{"from":"valhalla","result":"ok"}`),
	},
	HealthPath: {
		contentType: "text/plain",
		body:        []byte("OK"),
	},
}

// requestTarget returns the target as sent on the request line.
func requestTarget(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}

func requestHost(r *http.Request) string {
	if r.Host == "" {
		return UnknownHost
	}
	return r.Host
}
