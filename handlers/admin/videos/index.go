package videos

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/web"
)

type IndexData struct {
	View admin.Snapshot[catalog.Video]
	// Categories feeds the multi-select in the dialog.
	Categories []catalog.Category
	CanUpload  bool
}

// DraftHasCategory reports whether the draft's category snapshot already
// contains id. Drives the checked state of the dialog's multi-select.
func (d *IndexData) DraftHasCategory(id int64) bool {
	if d.View.Draft == nil {
		return false
	}
	for _, cat := range d.View.Draft.Categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

func (s *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()

	// category failures propagate; the video listing already degraded
	// to empty if the catalog is down
	categories, err := s.categories.List(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if err := s.vm.Refresh(ctx); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	s.tb.Build("admin/videos/index").HTML(http.StatusOK, web.NewContext(c).WithData(&IndexData{
		View:       s.vm.Snapshot(),
		Categories: categories,
		CanUpload:  s.uploads != nil,
	}))
}
