package categories

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/web"
)

const indexPath = "/admin/categories"

func (s *Handler) beginCreate(c *gin.Context) {
	s.vm.BeginCreate()
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) beginEdit(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("id"), 10, 64)
	if err != nil {
		web.RedirectWithError(c, errors.New("bad category id"))
		return
	}
	if !s.vm.BeginEdit(id) {
		web.RedirectWithError(c, errors.New("category not found"))
		return
	}
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) closeDialog(c *gin.Context) {
	s.vm.CloseDialog()
	c.Redirect(http.StatusFound, indexPath)
}

// save copies the submitted fields into the draft and submits it. A
// validation failure keeps the dialog open with its field errors; any
// other failure keeps the dialog and draft too, so no input is lost.
func (s *Handler) save(c *gin.Context) {
	name := c.PostForm("name")
	s.vm.UpdateDraft("name", func(cat *catalog.Category) {
		cat.Name = name
	})

	err := s.vm.Save(c.Request.Context())
	if err != nil {
		var verr *admin.ValidationError
		if errors.As(err, &verr) {
			c.Redirect(http.StatusFound, indexPath)
			return
		}
		web.RedirectWithError(c, err)
		return
	}
	web.RedirectWithSuccessAndMessage(c, "Category saved")
}
