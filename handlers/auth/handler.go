package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/session"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/web"
)

type LoginData struct {
	Username string
	Error    string
}

type Handler struct {
	api *catalog.Api
	tb  *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], api *catalog.Api) {
	h := &Handler{
		api: api,
		tb:  tm.MustRegisterViews("auth/*").WithLayout("main"),
	}
	r.GET("/", h.login)
	r.POST("/login", h.processLogin)
	r.GET("/logout", h.logout)
}

func (s *Handler) login(c *gin.Context) {
	s.tb.Build("auth/login").HTML(http.StatusOK, web.NewContext(c).WithData(&LoginData{}))
}

// processLogin trades credentials for a token and stores the identity in
// the session. Admins land on the console, everyone else on the public
// catalog.
func (s *Handler) processLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	res, err := s.api.Login(c.Request.Context(), username, password)
	if err != nil {
		log.WithError(err).WithField("username", username).Info("login failed")
		s.tb.Build("auth/login").HTML(http.StatusOK, web.NewContext(c).WithData(&LoginData{
			Username: username,
			Error:    "wrong username or password",
		}))
		return
	}

	err = session.Set(c, &session.User{
		Token:    res.Token,
		Role:     res.Role,
		Username: username,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if res.Role == session.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

func (s *Handler) logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		log.WithError(err).Error("failed to clear session")
	}
	c.Redirect(http.StatusFound, "/")
}
