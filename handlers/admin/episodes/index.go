package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/web"
	"github.com/anime-v1/web-ui/services/youtube"
)

// Row pairs an episode with its derived link presentation.
type Row struct {
	Episode admin.EpisodeForm
	Display youtube.Display
}

type IndexData struct {
	Videos        []catalog.Video
	Selected      *int64
	SelectedTitle string
	View          admin.Snapshot[admin.EpisodeForm]
	Rows          []Row
}

// IsSelected reports whether the picker is set to video id.
func (d *IndexData) IsSelected(id int64) bool {
	return d.Selected != nil && *d.Selected == id
}

// index renders the episode console: the video picker, and when a video
// is selected, its episode list. The video listing degrades to empty on
// failure, so the picker simply shows no options when the catalog is
// down.
func (s *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()
	vids := s.videos.List(ctx)

	selected, title := s.co.Selection()
	if selected != nil {
		if err := s.co.Episodes().Refresh(ctx); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
	}

	view := s.co.Episodes().Snapshot()
	rows := make([]Row, 0, len(view.Items))
	for _, ep := range view.Items {
		rows = append(rows, Row{
			Episode: ep,
			Display: youtube.Classify(ep.LinkEpisode),
		})
	}

	s.tb.Build("admin/episodes/index").HTML(http.StatusOK, web.NewContext(c).WithData(&IndexData{
		Videos:        vids,
		Selected:      selected,
		SelectedTitle: title,
		View:          view,
		Rows:          rows,
	}))
}
