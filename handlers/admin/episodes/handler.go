package episodes

import (
	"github.com/gin-gonic/gin"

	wad "github.com/anime-v1/web-ui/handlers/admin"
	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/web"
)

type Handler struct {
	co     *admin.Coordinator
	videos *catalog.Videos
	tb     *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], videos *catalog.Videos, eps *catalog.Episodes) {
	h := &Handler{
		co:     admin.NewCoordinator(eps, videos),
		videos: videos,
		tb:     tm.MustRegisterViews("admin/episodes/*").WithLayout("main"),
	}
	gr := r.Group("/admin/episodes")
	gr.Use(wad.Guard())
	gr.GET("", h.index)
	gr.POST("/select", h.selectVideo)
	gr.POST("/new", h.beginCreate)
	gr.POST("/edit", h.beginEdit)
	gr.POST("/close", h.closeDialog)
	gr.POST("/save", h.save)
	gr.POST("/delete", h.requestDelete)
	gr.POST("/delete/confirm", h.confirmDelete)
	gr.POST("/delete/cancel", h.cancelDelete)
}
