// Package ui draws diagnostics on top of the rendered field. Everything
// except this file needs the ebiten build tag.
package ui
