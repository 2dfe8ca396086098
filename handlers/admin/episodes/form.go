package episodes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/web"
)

const indexPath = "/admin/episodes"

// selectVideo switches the parent video. An empty id clears the
// selection.
func (s *Handler) selectVideo(c *gin.Context) {
	raw := c.PostForm("video_id")
	var id *int64
	if raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			web.RedirectWithError(c, errors.New("bad video id"))
			return
		}
		id = &v
	}
	if err := s.co.Select(c.Request.Context(), id); err != nil {
		web.RedirectWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) beginCreate(c *gin.Context) {
	if sel, _ := s.co.Selection(); sel == nil {
		web.RedirectWithError(c, errors.New("no video selected"))
		return
	}
	s.co.Episodes().BeginCreate()
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) beginEdit(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("id"), 10, 64)
	if err != nil {
		web.RedirectWithError(c, errors.New("bad episode id"))
		return
	}
	if !s.co.Episodes().BeginEdit(id) {
		web.RedirectWithError(c, errors.New("episode not found"))
		return
	}
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) closeDialog(c *gin.Context) {
	s.co.Episodes().CloseDialog()
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) save(c *gin.Context) {
	num := c.PostForm("numEpisode")
	link := c.PostForm("linkEpisode")
	linkType := admin.LinkType(c.PostForm("type"))
	if linkType != admin.LinkTypeEmbed {
		linkType = admin.LinkTypeURL
	}

	vm := s.co.Episodes()
	vm.UpdateDraft("numEpisode", func(f *admin.EpisodeForm) {
		f.NumEpisode = num
	})
	vm.UpdateDraft("linkEpisode", func(f *admin.EpisodeForm) {
		f.LinkEpisode = link
	})
	vm.UpdateDraft("type", func(f *admin.EpisodeForm) {
		f.Type = linkType
	})

	err := vm.Save(c.Request.Context())
	if err != nil {
		var verr *admin.ValidationError
		if errors.As(err, &verr) {
			c.Redirect(http.StatusFound, indexPath)
			return
		}
		web.RedirectWithError(c, err)
		return
	}
	web.RedirectWithSuccessAndMessage(c, "Episode saved")
}
