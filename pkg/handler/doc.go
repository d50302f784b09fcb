// Package handler implements the valhalla-sim HTTP routes.
//
//	GET /data    200 application/json {"from":"valhalla","result":"ok"}
//	GET /health  200 text/plain       OK
//	GET other    404                  (empty)
//
// Every GET produces exactly one server span named "incoming-request",
// continuing the W3C trace context sent by the caller. Unmatched targets
// mark the span as an error and add a "Resource not found" event. Other
// methods are answered with 501 and are not traced.
package handler
