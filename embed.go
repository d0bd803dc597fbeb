package inkpress

import "embed"

// embeddedAssets contains static assets shipped with the generator:
// the base stylesheet copied into every built site.
//
//go:embed embedded/*
var embeddedAssets embed.FS
