package videos

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	wad "github.com/anime-v1/web-ui/handlers/admin"
	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/uploads"
	"github.com/anime-v1/web-ui/services/web"
)

type Handler struct {
	vm         *admin.ViewModel[catalog.Video]
	categories *catalog.Categories
	uploads    *uploads.S3
	tb         *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], categories *catalog.Categories, videos *catalog.Videos, up *uploads.S3) {
	h := &Handler{
		vm: admin.NewViewModel[catalog.Video](store{videos: videos}, admin.Config[catalog.Video]{
			ID: func(v *catalog.Video) int64 {
				return v.ID
			},
			Validate: func(v *catalog.Video) map[string]string {
				if strings.TrimSpace(v.Title) == "" {
					return map[string]string{"title": "title is required"}
				}
				return nil
			},
		}),
		categories: categories,
		uploads:    up,
		tb:         tm.MustRegisterViews("admin/videos/*").WithLayout("main"),
	}
	gr := r.Group("/admin/videos")
	gr.Use(wad.Guard())
	gr.GET("", h.index)
	gr.POST("/new", h.beginCreate)
	gr.POST("/edit", h.beginEdit)
	gr.POST("/close", h.closeDialog)
	gr.POST("/save", h.save)
	gr.POST("/delete", h.requestDelete)
	gr.POST("/delete/confirm", h.confirmDelete)
	gr.POST("/delete/cancel", h.cancelDelete)
	if up != nil {
		gr.POST("/upload", h.upload)
	}
}

// store adapts the video client to the view-model contract. The video
// listing degrades to empty inside the client, so List never fails here.
type store struct {
	videos *catalog.Videos
}

func (s store) List(ctx context.Context) ([]catalog.Video, error) {
	return s.videos.List(ctx), nil
}

func (s store) Create(ctx context.Context, draft *catalog.Video) error {
	_, err := s.videos.Create(ctx, draft)
	return err
}

func (s store) Update(ctx context.Context, id int64, draft *catalog.Video) error {
	_, err := s.videos.Update(ctx, id, draft)
	return err
}

func (s store) Delete(ctx context.Context, id int64) error {
	return s.videos.Delete(ctx, id)
}
