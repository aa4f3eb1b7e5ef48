package visibility

import "errors"

// ErrMatrixBuild indicates an internal failure while populating the weight
// matrix — reachable only if a node index strayed out of the matrix's
// bounds, which Build's own bookkeeping should never allow.
var ErrMatrixBuild = errors.New("visibility: failed to populate weight matrix")
