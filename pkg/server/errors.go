package server

import "errors"

// ErrAlreadyStarted is returned by Start when the server is already listening.
var ErrAlreadyStarted = errors.New("server already started")
