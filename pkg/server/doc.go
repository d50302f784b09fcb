// Package server runs the valhalla-sim HTTP listener.
//
// By default it binds :3003 and accepts one connection at a time without
// keep-alives, so each request is handled to completion before the next
// connection is accepted. Raising Config.MaxConnections (or setting it to
// zero) lets net/http serve connections concurrently; the handler keeps no
// shared mutable state, so responses are the same either way.
//
// Under fx the listener is started with the application and released when
// it stops, which happens on SIGINT or SIGTERM.
package server
