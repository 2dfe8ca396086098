package web

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"

	"github.com/anime-v1/web-ui/services/common"
	"github.com/anime-v1/web-ui/services/session"
)

// Context is the render context every view receives: the page data, the
// signed-in user and any one-shot messages queued for this request.
type Context struct {
	Data    any
	User    *session.User
	Flashes []Flash

	c *gin.Context
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		c:       c,
		User:    session.FromContext(c),
		Flashes: popFlashes(c),
	}
}

func (ctx *Context) WithData(data any) *Context {
	ctx.Data = data
	return ctx
}

func (ctx *Context) RenderContext() *gin.Context {
	return ctx.c
}

type Helper struct {
	domain string
}

func NewHelper(c *cli.Context) *Helper {
	return &Helper{
		domain: c.String(common.DomainFlag),
	}
}

func (s *Helper) FuncMap() template.FuncMap {
	return template.FuncMap{
		"domain": func() string {
			return s.domain
		},
	}
}
