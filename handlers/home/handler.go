package home

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/web"
)

type Data struct {
	Categories []catalog.Category
	Videos     []catalog.Video
	Selected   *int64
}

// IsSelected reports whether the category filter is set to id.
func (d *Data) IsSelected(id int64) bool {
	return d.Selected != nil && *d.Selected == id
}

type Handler struct {
	categories *catalog.Categories
	videos     *catalog.Videos
	tb         *template.Builder[*web.Context]
}

func RegisterHandler(r *gin.Engine, tm *template.Manager[*web.Context], categories *catalog.Categories, videos *catalog.Videos) {
	h := &Handler{
		categories: categories,
		videos:     videos,
		tb:         tm.MustRegisterViews("home/*").WithLayout("main"),
	}
	r.GET("/home", h.index)
}

// index renders the public catalog, filtered down to one category when
// requested. Both listings are render-safe here: the category failure is
// handled locally, the video listing degrades to empty on its own.
func (s *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := s.categories.List(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list categories")
	}
	videos := s.videos.List(ctx)

	var selected *int64
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			selected = &id
		}
	}

	s.tb.Build("home/index").HTML(http.StatusOK, web.NewContext(c).WithData(&Data{
		Categories: categories,
		Videos:     filterByCategory(videos, selected),
		Selected:   selected,
	}))
}

// filterByCategory matches against the category snapshots embedded in
// each video at save time.
func filterByCategory(videos []catalog.Video, id *int64) []catalog.Video {
	if id == nil {
		return videos
	}
	var out []catalog.Video
	for _, v := range videos {
		for _, cat := range v.Categories {
			if cat.ID == *id {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
