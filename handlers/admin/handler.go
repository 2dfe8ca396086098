package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anime-v1/web-ui/services/session"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/web"
)

// Guard admits only authenticated administrators; everyone else lands on
// the public catalog. The decision is re-evaluated on every request,
// never cached.
func Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := session.FromContext(c)
		if !u.IsAdmin() {
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

type Handler struct {
	tb *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context]) {
	h := &Handler{
		tb: tm.MustRegisterViews("admin/*").WithLayout("main"),
	}
	gr := r.Group("/admin")
	gr.Use(Guard())
	gr.GET("", h.index)
}

func (s *Handler) index(c *gin.Context) {
	s.tb.Build("admin/index").HTML(http.StatusOK, web.NewContext(c))
}
