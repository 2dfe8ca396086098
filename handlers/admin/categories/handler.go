package categories

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	wad "github.com/anime-v1/web-ui/handlers/admin"
	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/web"
)

type Handler struct {
	vm *admin.ViewModel[catalog.Category]
	tb *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], categories *catalog.Categories) {
	h := &Handler{
		vm: admin.NewViewModel[catalog.Category](store{categories: categories}, admin.Config[catalog.Category]{
			ID: func(cat *catalog.Category) int64 {
				return cat.ID
			},
			Validate: func(cat *catalog.Category) map[string]string {
				if strings.TrimSpace(cat.Name) == "" {
					return map[string]string{"name": "name is required"}
				}
				return nil
			},
		}),
		tb: tm.MustRegisterViews("admin/categories/*").WithLayout("main"),
	}
	gr := r.Group("/admin/categories")
	gr.Use(wad.Guard())
	gr.GET("", h.index)
	gr.POST("/new", h.beginCreate)
	gr.POST("/edit", h.beginEdit)
	gr.POST("/close", h.closeDialog)
	gr.POST("/save", h.save)
	gr.POST("/delete", h.requestDelete)
	gr.POST("/delete/confirm", h.confirmDelete)
	gr.POST("/delete/cancel", h.cancelDelete)
}

// store adapts the category client to the view-model contract. List
// keeps the client's propagate-on-failure policy.
type store struct {
	categories *catalog.Categories
}

func (s store) List(ctx context.Context) ([]catalog.Category, error) {
	return s.categories.List(ctx)
}

func (s store) Create(ctx context.Context, draft *catalog.Category) error {
	_, err := s.categories.Create(ctx, draft)
	return err
}

func (s store) Update(ctx context.Context, id int64, draft *catalog.Category) error {
	_, err := s.categories.Update(ctx, id, draft)
	return err
}

func (s store) Delete(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}
