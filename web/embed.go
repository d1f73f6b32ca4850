// Package web хранит страницу, которая отдаётся по /app/.
package web

import "embed"

//go:embed index.html style.css platform.js main.js
var Assets embed.FS
