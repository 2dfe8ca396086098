package categories

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/anime-v1/web-ui/services/web"
)

func (s *Handler) requestDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("id"), 10, 64)
	if err != nil {
		web.RedirectWithError(c, errors.New("bad category id"))
		return
	}
	s.vm.RequestDelete(id)
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) cancelDelete(c *gin.Context) {
	s.vm.CancelDelete()
	c.Redirect(http.StatusFound, indexPath)
}

// confirmDelete always closes the confirmation; only the outcome message
// differs.
func (s *Handler) confirmDelete(c *gin.Context) {
	if err := s.vm.ConfirmDelete(c.Request.Context()); err != nil {
		web.RedirectWithError(c, err)
		return
	}
	web.RedirectWithSuccessAndMessage(c, "Category deleted")
}
