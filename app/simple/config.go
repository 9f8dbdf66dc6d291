package simple

import (
	"github.com/dmitrymomot/sessionkit/core/cookie"
	"github.com/dmitrymomot/sessionkit/core/server"
	"github.com/dmitrymomot/sessionkit/core/session"
)

// Config aggregates the environment configuration of every subsystem
// the app wires together.
type Config struct {
	Cookie  cookie.Config
	Session session.Config
	Server  server.Config

	AppName string `env:"APP_NAME" envDefault:"sessionkit-app"`
	Env     string `env:"APP_ENV" envDefault:"development"`
}
