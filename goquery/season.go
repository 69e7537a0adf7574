package goquery

import "github.com/fwojciec/cinelink"

var _ cinelink.SeasonExtractor = (*SeasonExtractor)(nil)

// SeasonExtractor reads the season list of a TV show page. Each season
// heading (.se-q) is followed by its episode list (.se-a).
type SeasonExtractor struct{}

// NewSeasonExtractor creates a new SeasonExtractor.
func NewSeasonExtractor() *SeasonExtractor {
	return &SeasonExtractor{}
}

// ExtractSeasons returns the seasons in page order. Episode links are
// normalized and titles cleaned of subtitle tags.
func (e *SeasonExtractor) ExtractSeasons(html string) ([]cinelink.Season, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}

	var seasons []cinelink.Season
	doc.FindAll("#seasons .se-q", func(heading Node) {
		number := heading.FirstText(".se-t")
		if number == "" {
			return
		}
		season := cinelink.Season{
			Number:   number,
			Title:    heading.FirstText(".title"),
			Episodes: []cinelink.Episode{},
		}

		list, ok := heading.NextSibling(".se-a")
		if ok {
			list.FindAll("li", func(item Node) {
				link, ok := item.FirstAttr(".episodiotitle a", "href")
				if !ok {
					return
				}
				season.Episodes = append(season.Episodes, cinelink.Episode{
					Number: item.FirstText(".numerando"),
					Title:  cinelink.CleanTitle(item.FirstText(".episodiotitle a")),
					URL:    cinelink.NormalizeLink(link),
					Date:   item.FirstText(".date"),
				})
			})
		}

		seasons = append(seasons, season)
	})

	return seasons, nil
}
