package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/inputtrack/internal/config"
	"github.com/dshills/inputtrack/internal/event"
	"github.com/dshills/inputtrack/internal/input"
	"github.com/dshills/inputtrack/internal/registry"
)

// Service is the central coordinator: it owns the window registry and
// the dispatcher, and keeps every tracker's settings in sync with the
// active configuration.
type Service struct {
	mu  sync.RWMutex
	cfg config.Config

	logger     *Logger
	reg        *registry.Registry
	dispatcher *event.Dispatcher
	watcher    *config.Watcher
}

// Options configures the service.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means
	// defaults plus environment overrides.
	ConfigPath string

	// WatchConfig enables live reload of the configuration file.
	WatchConfig bool

	// LogOutput overrides where logs are written. Defaults to stderr.
	LogOutput io.Writer
}

// New creates a service with the given options.
func New(opts Options) (*Service, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loggerCfg := DefaultLoggerConfig()
	loggerCfg.Level = ParseLogLevel(cfg.LogLevel)
	if opts.LogOutput != nil {
		loggerCfg.Output = opts.LogOutput
	}

	s := &Service{
		cfg:    cfg,
		logger: NewLogger(loggerCfg),
		reg:    registry.New(),
	}
	s.dispatcher = event.NewDispatcher(s.reg)

	if opts.WatchConfig && opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, s.applyConfig,
			config.WithErrorHandler(func(err error) {
				s.logger.Warn("config reload failed: %v", err)
			}))
		if err != nil {
			return nil, fmt.Errorf("watching config: %w", err)
		}
		s.watcher = w
		s.logger.Info("watching config file %s", opts.ConfigPath)
	}

	return s, nil
}

// Config returns a snapshot of the active configuration.
func (s *Service) Config() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Logger returns the service logger.
func (s *Service) Logger() *Logger {
	return s.logger
}

// Registry returns the window registry.
func (s *Service) Registry() *registry.Registry {
	return s.reg
}

// Dispatcher returns the event dispatcher.
func (s *Service) Dispatcher() *event.Dispatcher {
	return s.dispatcher
}

// RegisterWindow creates or finds the tracker for a window and applies
// the active configuration to it.
func (s *Service) RegisterWindow(window registry.WindowID) *input.Tracker {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	tracker := s.reg.Register(window, input.WithGracePeriod(cfg.GracePeriod))
	tracker.Metrics().SetEnabled(cfg.MetricsEnabled)

	s.logger.Debug("registered window %#x", uintptr(window))
	return tracker
}

// UnregisterWindow removes a window's tracker and any cursor override.
func (s *Service) UnregisterWindow(window registry.WindowID) bool {
	s.dispatcher.ClearCursorOverride(window)
	removed := s.reg.Unregister(window)
	if removed {
		s.logger.Debug("unregistered window %#x", uintptr(window))
	}
	return removed
}

// applyConfig installs a new configuration and pushes the tracker-level
// settings to every registered tracker.
func (s *Service) applyConfig(cfg config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	s.logger.SetLevel(ParseLogLevel(cfg.LogLevel))
	s.reg.Each(func(_ registry.WindowID, t *input.Tracker) {
		t.SetGracePeriod(cfg.GracePeriod)
		t.Metrics().SetEnabled(cfg.MetricsEnabled)
	})

	s.logger.Info("config applied: grace=%s metrics=%v level=%s",
		cfg.GracePeriod, cfg.MetricsEnabled, cfg.LogLevel)
}

// Shutdown stops the config watcher. Trackers need no teardown.
func (s *Service) Shutdown() error {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			return err
		}
	}
	s.logger.Info("service shut down")
	return nil
}
