// Package buildtools holds the one-shot site maintenance transforms: asset
// cache-busting and the sitemap timestamp. Both are idempotent text
// substitutions on local files with no link to the runtime service.
package buildtools

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// DefaultHTMLFiles are the static pages whose asset references get
// versioned query tokens.
var DefaultHTMLFiles = []string{"index.html", "cart.html"}

type assetRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Each rule matches the asset reference with or without an existing ?v=
// token, so re-running always lands on exactly one token.
var assetRules = []assetRule{
	{regexp.MustCompile(`product_loader(?:\.min)?\.js(\?v=[^"']+)?`), "product_loader.min.js?v=%s"},
	{regexp.MustCompile(`cart(?:\.min)?\.js(\?v=[^"']+)?`), "cart.min.js?v=%s"},
	{regexp.MustCompile(`styles(?:\.min)?\.css(\?v=[^"']+)?`), "styles.min.css?v=%s"},
}

// VersionToken builds the cache-busting token: the site version plus a
// short timestamp, so every run produces a fresh token on an unchanged
// version.
func VersionToken(version string, now time.Time) string {

	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	if len(stamp) > 6 {
		stamp = stamp[len(stamp)-6:]
	}

	return version + "." + stamp
}

// RewriteAssetVersions replaces every known asset reference in the HTML
// content with its minified name carrying the token.
func RewriteAssetVersions(content, token string) string {

	for _, rule := range assetRules {
		content = rule.pattern.ReplaceAllString(content, fmt.Sprintf(rule.replacement, token))
	}

	return content
}

// BustFiles rewrites the asset tokens in each named HTML file under dir.
// Missing files are skipped; the returned list names the files touched.
func BustFiles(dir string, files []string, token string) ([]string, error) {

	var updated []string

	for _, file := range files {

		path := filepath.Join(dir, file)

		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return updated, fmt.Errorf("reading %s: %w", path, err)
		}

		rewritten := RewriteAssetVersions(string(content), token)

		if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
			return updated, fmt.Errorf("writing %s: %w", path, err)
		}

		updated = append(updated, file)
	}

	return updated, nil
}
