package videos

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/web"
)

// upload stores a poster image and points the draft's image field at
// the resulting public URL. The dialog stays open so the admin can
// keep editing.
func (s *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		web.RedirectWithError(c, errors.Wrap(err, "failed to read uploaded file"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		web.RedirectWithError(c, errors.Wrap(err, "failed to open uploaded file"))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	key := "posters/" + uuid.New().String() + filepath.Ext(fh.Filename)
	url, err := s.uploads.Save(c.Request.Context(), key, f)
	if err != nil {
		web.RedirectWithError(c, errors.Wrap(err, "failed to store uploaded file"))
		return
	}

	s.vm.UpdateDraft("image", func(v *catalog.Video) {
		v.Image = url
	})
	c.Redirect(http.StatusFound, indexPath)
}
