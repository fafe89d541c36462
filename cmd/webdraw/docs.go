package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/webdraw/docs.go`.
//
// @title           webdraw API
// @version         1.0
// @description     Read-only listings of local models, presets and elements for the WebDraw studio.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
