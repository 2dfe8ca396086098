package videos

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
		web.RedirectWithError(c, errors.New("bad video id"))
		return
	}
	s.vm.RequestDelete(id)
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) cancelDelete(c *gin.Context) {
	s.vm.CancelDelete()
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) confirmDelete(c *gin.Context) {
	err := s.vm.ConfirmDelete(c.Request.Context())
	if err != nil {
		web.RedirectWithError(c, err)
		return
	}
	web.RedirectWithSuccessAndMessage(c, "Video deleted")
}
