// Package ui provides the main entry point for the UI.
package ui

import (
	"luckygates/internal/config"
	"luckygates/internal/prefs"
	"luckygates/internal/ui/handler"
	"luckygates/internal/ui/input"
	"luckygates/internal/ui/model"
	"luckygates/internal/ui/view"
	"luckygates/internal/wallet"
)

// NewApp creates the fully wired client model.
func NewApp(cfg *config.Config, w wallet.Provider, store prefs.Store) *model.App {
	m := model.NewApp(cfg, w, store)
	m.SetRenderers(view.CreateViewRenderer(), input.HandleKeyPress, handler.HandleServerMessage)
	return m
}
