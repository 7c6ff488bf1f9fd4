//go:build windows

// Package main provides Windows service support for the LocalShelf backend.
//
// service_windows.go implements the Windows Service interface using
// github.com/kardianos/service, so the library watcher can run as a
// background service with proper Start/Stop handling.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kardianos/service"
	"go.uber.org/zap"

	"shelf_backend/core"
	"shelf_backend/db"
	"shelf_backend/importer"
	"shelf_backend/logging"
)

// Program implements service.Interface. It wraps the library watcher and
// provides Start/Stop lifecycle methods.
type Program struct {
	cfg    *core.Config
	logger *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	exit   chan struct{}
}

// Start is called when the service is started. It launches the watcher in
// a goroutine and returns immediately, as the service manager requires.
func (p *Program) Start(s service.Service) error {
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.exit = make(chan struct{})

	go p.run()
	return nil
}

// Stop signals the watcher to shut down and waits for it to finish.
func (p *Program) Stop(s service.Service) error {
	p.cancel()

	select {
	case <-p.exit:
	case <-time.After(30 * time.Second):
		return fmt.Errorf("timeout waiting for service to stop")
	}
	return nil
}

// run owns the watcher for the lifetime of the service.
func (p *Program) run() {
	defer close(p.exit)

	database, err := db.NewDatabase(db.DatabaseConfig{Path: p.cfg.DatabasePath()})
	if err != nil {
		p.logger.Error("failed to open shelf database", zap.Error(err))
		return
	}
	defer database.Close()

	if err := os.MkdirAll(p.cfg.LibraryDir, 0755); err != nil {
		p.logger.Error("failed to create library directory", zap.Error(err))
		return
	}

	im := importer.New(db.NewBookRepository(database.DB()), p.cfg.CoversDir(), p.logger)
	watcher := NewWatcher(im, p.cfg.LibraryDir, p.cfg.WatchInterval, p.logger)
	go watcher.Start(p.ctx)

	p.logger.Info("service watching library directory",
		zap.String("dir", p.cfg.LibraryDir),
		zap.Duration("interval", p.cfg.WatchInterval),
	)
	<-watcher.Done()
}

// ServiceConfig returns the service configuration for Windows.
func ServiceConfig() *service.Config {
	return &service.Config{
		Name:        "LocalShelf",
		DisplayName: "LocalShelf Library Watcher",
		Description: "Watches the LocalShelf library directory and imports new book files",
		Option: service.KeyValue{
			"StartType": "automatic",
		},
	}
}

// RunAsService runs the watcher under the Windows service manager.
// Returns true if running as a service, false if running interactively.
func RunAsService(cfg *core.Config, logger *logging.Logger) (bool, error) {
	prg := &Program{cfg: cfg, logger: logger}

	s, err := service.New(prg, ServiceConfig())
	if err != nil {
		return false, fmt.Errorf("failed to create service: %w", err)
	}

	if service.Interactive() {
		return false, nil
	}

	if err := s.Run(); err != nil {
		return true, fmt.Errorf("service run failed: %w", err)
	}
	return true, nil
}

// newServiceControl builds a service handle for management commands. The
// Program is never started by these, so config and logger stay nil.
func newServiceControl() (service.Service, error) {
	s, err := service.New(&Program{}, ServiceConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s, nil
}

// HandleServiceCommand handles service-related command-line arguments
// (install, uninstall, start, stop, restart, status). Returns true if a
// service command was handled, false otherwise.
func HandleServiceCommand(args []string) bool {
	if len(args) < 2 {
		return false
	}

	s, err := newServiceControl()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(core.ExitCodeError)
	}

	switch args[1] {
	case "install":
		err = s.Install()
		if err == nil {
			fmt.Println("Service installed successfully")
		}
	case "uninstall", "remove":
		err = s.Uninstall()
		if err == nil {
			fmt.Println("Service uninstalled successfully")
		}
	case "start":
		err = s.Start()
		if err == nil {
			fmt.Println("Service started successfully")
		}
	case "stop":
		err = s.Stop()
		if err == nil {
			fmt.Println("Service stopped successfully")
		}
	case "restart":
		err = s.Restart()
		if err == nil {
			fmt.Println("Service restarted successfully")
		}
	case "status":
		status, statusErr := s.Status()
		if statusErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", statusErr)
			os.Exit(core.ExitCodeError)
		}
		switch status {
		case service.StatusRunning:
			fmt.Println("Service is running")
		case service.StatusStopped:
			fmt.Println("Service is stopped")
		default:
			fmt.Println("Service status unknown")
		}
		return true
	default:
		return false
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(core.ExitCodeError)
	}
	return true
}
