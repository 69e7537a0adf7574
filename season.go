package cinelink

// Episode is one episode listed on a TV show page.
type Episode struct {
	Number string `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Date   string `json:"date,omitempty"`
}

// Season groups the episodes of a TV show page under one season heading.
type Season struct {
	Number   string    `json:"number"`
	Title    string    `json:"title"`
	Episodes []Episode `json:"episodes"`
}

// EpisodeURLs returns the episode page URLs of all seasons in page order.
func EpisodeURLs(seasons []Season) []string {
	var urls []string
	for _, s := range seasons {
		for _, e := range s.Episodes {
			urls = append(urls, e.URL)
		}
	}
	return urls
}
