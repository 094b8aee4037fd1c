package buildtools

import (
	"fmt"
	"os"
	"regexp"
	"time"
)

var (
	lastmodPattern  = regexp.MustCompile(`<lastmod>[^<]+</lastmod>`)
	firstLocPattern = regexp.MustCompile(`(<loc>[^<]+</loc>)`)
)

// StampSitemap sets every <lastmod> in the sitemap XML to the given date
// (YYYY-MM-DD). When no <lastmod> exists one is inserted after the first
// <loc>. Running it twice with the same date changes nothing.
func StampSitemap(xml, date string) string {

	if lastmodPattern.MatchString(xml) {
		return lastmodPattern.ReplaceAllString(xml, "<lastmod>"+date+"</lastmod>")
	}

	replaced := false

	return firstLocPattern.ReplaceAllStringFunc(xml, func(loc string) string {
		if replaced {
			return loc
		}
		replaced = true
		return loc + "\n    <lastmod>" + date + "</lastmod>"
	})
}

// UpdateSitemapFile stamps the sitemap at path with today's date. A missing
// sitemap is a clean skip, reported as found=false.
func UpdateSitemapFile(path string, now time.Time) (bool, error) {

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	stamped := StampSitemap(string(content), now.Format("2006-01-02"))

	if err := os.WriteFile(path, []byte(stamped), 0o644); err != nil {
		return true, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}
