package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"

	"github.com/anime-v1/web-ui/services/common"
)

// RegisterHandler attaches the cookie-backed session store every other
// handler reads identity and flashes from.
func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	store := cookie.NewStore([]byte(c.String(common.SessionSecretFlag)))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30,
	})
	r.Use(sessions.Sessions("session", store))
	return nil
}
