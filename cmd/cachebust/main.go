package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bluemoonhaven/bakery-storefront/internal/buildtools"
)

func main() {

	version := flag.String("version", "1.0.0", "site version used in the asset token")
	dir := flag.String("dir", ".", "directory holding the static HTML files")
	files := flag.String("files", strings.Join(buildtools.DefaultHTMLFiles, ","), "comma-separated HTML files to rewrite")
	flag.Parse()

	token := buildtools.VersionToken(*version, time.Now())

	updated, err := buildtools.BustFiles(*dir, strings.Split(*files, ","), token)
	if err != nil {
		slog.Error("Cache bust failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, file := range updated {
		slog.Info("Cache bust updated", slog.String("file", file), slog.String("token", token))
	}
}
