package goquery

import (
	"strings"

	"github.com/fwojciec/cinelink"
)

var _ cinelink.RedirectExtractor = (*RedirectExtractor)(nil)

// RedirectExtractor finds the hosting page URL on an intermediate page.
type RedirectExtractor struct{}

// NewRedirectExtractor creates a new RedirectExtractor.
func NewRedirectExtractor() *RedirectExtractor {
	return &RedirectExtractor{}
}

// ExtractRedirect looks, in order, for the element with id "link", an
// anchor with class "download-link" and a meta refresh directive.
// The target is returned as found on the page.
func (e *RedirectExtractor) ExtractRedirect(html string) (string, bool, error) {
	doc, err := Parse(html)
	if err != nil {
		return "", false, err
	}

	if target, ok := doc.FirstAttr("#link", "href"); ok {
		return target, true, nil
	}
	if target, ok := doc.FirstAttr("a.download-link", "href"); ok {
		return target, true, nil
	}

	var target string
	doc.FindAll("meta[http-equiv]", func(meta Node) {
		if target != "" {
			return
		}
		equiv, _ := meta.Attr("http-equiv")
		if !strings.EqualFold(equiv, "refresh") {
			return
		}
		content, _ := meta.Attr("content")
		if u, ok := cinelink.ParseRefreshURL(content); ok {
			target = u
		}
	})

	return target, target != "", nil
}
