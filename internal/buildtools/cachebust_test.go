package buildtools_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluemoonhaven/bakery-storefront/internal/buildtools"
)

func TestVersionToken(t *testing.T) {
	now := time.UnixMilli(1756500123456)

	token := buildtools.VersionToken("2.3", now)

	assert.Equal(t, "2.3.123456", token)

	t.Run("Different Times Yield Different Tokens", func(t *testing.T) {
		assert.NotEqual(t, token, buildtools.VersionToken("2.3", now.Add(time.Second)))
	})
}

func TestRewriteAssetVersions(t *testing.T) {

	t.Run("Unversioned References Gain A Token", func(t *testing.T) {
		html := `<script src="product_loader.js"></script>
<script src="cart.js"></script>
<link rel="stylesheet" href="styles.css">`

		out := buildtools.RewriteAssetVersions(html, "2.3.123456")

		assert.Contains(t, out, `product_loader.min.js?v=2.3.123456`)
		assert.Contains(t, out, `cart.min.js?v=2.3.123456`)
		assert.Contains(t, out, `styles.min.css?v=2.3.123456`)
	})

	t.Run("Rerunning Replaces The Old Token", func(t *testing.T) {
		html := `<script src="product_loader.min.js?v=2.2.000111"></script>`

		out := buildtools.RewriteAssetVersions(html, "2.3.123456")

		assert.Contains(t, out, `product_loader.min.js?v=2.3.123456`)
		assert.NotContains(t, out, "2.2.000111")
		assert.Equal(t, 1, strings.Count(out, "?v="), "exactly one token after rerun")
	})

	t.Run("Already Minified Names Stay Minified", func(t *testing.T) {
		html := `<link rel="stylesheet" href="styles.min.css">`

		out := buildtools.RewriteAssetVersions(html, "2.3.123456")

		assert.Contains(t, out, `styles.min.css?v=2.3.123456`)
		assert.NotContains(t, out, "min.min")
	})

	t.Run("Unrelated Content Untouched", func(t *testing.T) {
		html := `<script src="vendor/analytics.js"></script>`

		assert.Equal(t, html, buildtools.RewriteAssetVersions(html, "2.3.123456"))
	})
}

func TestBustFiles(t *testing.T) {

	t.Run("Rewrites Each Present File", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
			[]byte(`<script src="product_loader.js"></script>`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.html"),
			[]byte(`<script src="cart.js"></script>`), 0o644))

		// Act
		updated, err := buildtools.BustFiles(dir, buildtools.DefaultHTMLFiles, "2.3.123456")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"index.html", "cart.html"}, updated)

		content, err := os.ReadFile(filepath.Join(dir, "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "product_loader.min.js?v=2.3.123456")
	})

	t.Run("Missing Files Are Skipped", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"),
			[]byte(`<script src="cart.js"></script>`), 0o644))

		// Act
		updated, err := buildtools.BustFiles(dir, buildtools.DefaultHTMLFiles, "2.3.123456")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"index.html"}, updated)
	})

	t.Run("Empty Directory Touches Nothing", func(t *testing.T) {
		updated, err := buildtools.BustFiles(t.TempDir(), buildtools.DefaultHTMLFiles, "2.3.123456")

		require.NoError(t, err)
		assert.Empty(t, updated)
	})
}
