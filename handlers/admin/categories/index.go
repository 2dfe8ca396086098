package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/web"
)

type IndexData struct {
	View admin.Snapshot[catalog.Category]
}

// index reloads and renders the category list. The category listing
// propagates failures, so a broken catalog shows up as an error page
// here rather than an empty table.
func (s *Handler) index(c *gin.Context) {
	if err := s.vm.Refresh(c.Request.Context()); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	s.tb.Build("admin/categories/index").HTML(http.StatusOK, web.NewContext(c).WithData(&IndexData{
		View: s.vm.Snapshot(),
	}))
}
