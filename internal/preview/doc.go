// Package preview implements the development preview server.
//
// The server renders the page file on every request, so a browser refresh
// always shows the current file. With reload enabled, served pages carry a
// small client script that connects to /_topus/reload; a polling Watcher
// notices page file changes and the ReloadHub tells every browser to
// reload, or shows the page error in an overlay.
//
// # Routes
//
//	GET /                 rendered page
//	GET /_topus/reload    reload websocket
//	GET /metrics          Prometheus metrics
//	GET /healthz          liveness
package preview
