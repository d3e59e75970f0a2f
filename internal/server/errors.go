package server

import "errors"

// errNoServersAreCreated means no transport has both an address and a handler.
var errNoServersAreCreated = errors.New("no servers are created")
