//go:build !ebiten

package ui

type panelImage = any
