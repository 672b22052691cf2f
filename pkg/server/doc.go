// Package server provides the domkit document preview server.
//
// The preview server is a development aid: it serves a programmatically
// built document over HTTP, re-rendering on every request so edits to the
// document source show up on refresh. It exposes:
//
//   - GET /            the rendered document
//   - GET /healthz     liveness probe
//   - GET /metrics     Prometheus metrics (render count, duration, bytes)
//   - GET /__reload    WebSocket endpoint for live-reload notifications
//   - GET /__reload.js browser client for the reload endpoint
//
// Requests are traced with OpenTelemetry. The core dom package performs no
// I/O; everything network-facing lives here.
package server
