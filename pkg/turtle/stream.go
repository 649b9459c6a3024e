package turtle

import "errors"

// ErrStreamingUnsupported is returned by the Feed/EndInput stubs. True
// incremental parsing is a future extension; the hooks exist for
// interface parity only.
var ErrStreamingUnsupported = errors.New("turtle: incremental parsing not supported")
