// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/pkg/checks/ping"
	"gopkg.in/yaml.v3"
)

var _ Loader = (*FileLoader)(nil)

// FileLoader reads the ping check configuration from a yaml file
type FileLoader struct {
	config LoaderConfig
	cPing  chan<- ping.Config
	done   chan struct{}
	fsys   fs.FS
}

// pingFile is the layout of the loaded file
type pingFile struct {
	Ping *ping.Config `yaml:"ping"`
}

func NewFileLoader(cfg *Config, cPing chan<- ping.Config) *FileLoader {
	return &FileLoader{
		config: cfg.Loader,
		cPing:  cPing,
		done:   make(chan struct{}, 1),
		fsys:   os.DirFS(filepath.Dir(cfg.Loader.File.Path)),
	}
}

// Run reads the ping configuration from the file.
// The file is read again every loader interval.
// If the interval is 0, the file is only read once and the loader is disabled.
func (f *FileLoader) Run(ctx context.Context) error {
	ctx, cancel := logger.NewContextWithLogger(ctx)
	defer cancel()
	log := logger.FromContext(ctx)

	cfg, err := f.getPingConfig(ctx)
	if err != nil {
		log.Warn("Could not get ping configuration", "error", err)
		err = fmt.Errorf("could not get ping configuration: %w", err)
	} else {
		f.cPing <- cfg
	}

	if f.config.Interval == 0 {
		log.Info("File Loader disabled")
		return err
	}

	tick := time.NewTicker(f.config.Interval)
	defer tick.Stop()

	for {
		select {
		case <-f.done:
			log.Info("File Loader terminated")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			cfg, err := f.getPingConfig(ctx)
			if err != nil {
				log.Warn("Could not get ping configuration", "error", err)
				continue
			}

			log.Debug("Successfully got ping configuration")
			select {
			case f.cPing <- cfg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// getPingConfig reads the ping section of the configured file.
func (f *FileLoader) getPingConfig(ctx context.Context) (cfg ping.Config, err error) {
	log := logger.FromContext(ctx).With("path", f.config.File.Path)

	file, err := f.fsys.Open(filepath.Base(f.config.File.Path))
	if err != nil {
		log.Error("Failed to open config file", "error", err)
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		cerr := file.Close()
		if cerr != nil {
			log.Error("Failed to close config file", "error", cerr)
		}
		err = errors.Join(cerr, err)
	}()

	b, err := io.ReadAll(file)
	if err != nil {
		log.Error("Failed to read config file", "error", err)
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var pf pingFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		log.Error("Failed to parse config file", "error", err)
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if pf.Ping == nil {
		return cfg, ErrMissingPingConfig
	}

	return *pf.Ping, nil
}

func (f *FileLoader) Shutdown(ctx context.Context) {
	log := logger.FromContext(ctx)
	select {
	case f.done <- struct{}{}:
		log.Debug("Sending signal to shut down file loader")
	default:
	}
}
