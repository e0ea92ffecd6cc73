package snarkflix

import "embed"

// EmbeddedAssets contains the client-side asset shipped with the engine:
// catalog.js (image fallback, copy-link, search clear).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
