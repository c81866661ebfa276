package scenes

import (
	"strings"

	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/systems"
)

// ErrorScene reports a failure that stopped a scene from starting.
type ErrorScene struct {
	*pageScene
	err error
}

func NewErrorScene(hub *systems.Hub, err error, nav systems.Navigator) (*ErrorScene, error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	lines := strings.Split(msg, "\n")
	ps, uiErr := newPageScene(hub, nav, "Something went wrong", lines, cfg.LightRed)
	if uiErr != nil {
		return nil, uiErr
	}
	return &ErrorScene{pageScene: ps, err: err}, nil
}

// Err returns the error being shown.
func (es *ErrorScene) Err() error {
	return es.err
}
