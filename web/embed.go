package web

import "embed"

// FS holds the site stylesheet and other files served under /static. Hospital
// photos are not embedded; they live in ASSET_DIR and are served under /assets.
//
//go:embed static/*
var FS embed.FS
