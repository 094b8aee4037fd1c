package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/bluemoonhaven/bakery-storefront/internal/buildtools"
)

func main() {

	path := flag.String("sitemap", "sitemap.xml", "path to the sitemap file")
	flag.Parse()

	found, err := buildtools.UpdateSitemapFile(*path, time.Now())
	if err != nil {
		slog.Error("Sitemap update failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !found {
		slog.Info("Sitemap not found, skipping", slog.String("path", *path))
		return
	}

	slog.Info("Updated sitemap lastmod", slog.String("path", *path), slog.String("date", time.Now().Format("2006-01-02")))
}
