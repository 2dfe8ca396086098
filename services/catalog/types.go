package catalog

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Video embeds category snapshots (id+name) taken at save time. Renaming
// a category later does not rewrite videos saved with the old name.
type Video struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Categories  []Category `json:"categories"`
}

// VideoRef is the foreign-key style owner reference an episode carries.
type VideoRef struct {
	ID int64 `json:"id"`
}

// Episode is always scoped to exactly one video. LinkEpisode holds
// either a URL or raw embed markup; the catalog does not enforce which.
type Episode struct {
	ID          int64     `json:"id"`
	NumEpisode  int       `json:"numEpisode"`
	LinkEpisode string    `json:"linkEpisode"`
	Video       *VideoRef `json:"video,omitempty"`
}
