// Package tui renders the sweet shop in the terminal. [RootModel] routes
// between the pages and enforces the access guard on every navigation.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services        *service.ClientServices
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo
	logger          *logger.Logger
}

func New(
	services *service.ClientServices,
	refreshInterval time.Duration,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{
		services:        services,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		logger:          logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. A user quit is
// reported as ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.refreshInterval, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program stopped")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
