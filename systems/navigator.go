package systems

import cfg "github.com/automoto/tilestep/config"

// Navigator lets systems change the top-level state. Requests take effect
// at the start of the next tick.
type Navigator interface {
	Request(next cfg.GameState)
	Fail(err error)
}
