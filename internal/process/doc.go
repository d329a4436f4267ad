// Package process stops the browser process trees left by the PNG
// exporter.
package process
