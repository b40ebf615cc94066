// Package main is the entry point for shaderview, a live GLSL program viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shaderkit/cmd/shaderview/shaders"
	"github.com/Faultbox/shaderkit/internal/config"
	"github.com/Faultbox/shaderkit/internal/engine/input"
	"github.com/Faultbox/shaderkit/internal/engine/renderer"
	"github.com/Faultbox/shaderkit/internal/engine/window"
	"github.com/Faultbox/shaderkit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("shaderview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("shaderview closed normally")
}

func run(cfg *config.Config) error {
	vertexSrc, err := readSource(cfg.Shaders.Vertex, shaders.QuadVertexShader)
	if err != nil {
		return err
	}
	fragmentSrc, err := readSource(cfg.Shaders.Fragment, shaders.PlasmaFragmentShader)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.DrawableSize()
	r, err := renderer.New(renderer.Config{
		Width:          width,
		Height:         height,
		VertexSource:   vertexSrc,
		FragmentSource: fragmentSrc,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	in := input.New()
	start := win.Ticks()
	for !in.Update() {
		if _, _, ok := in.Resized(); ok {
			r.Resize(win.DrawableSize())
		}
		if err := r.Frame(float32(win.Ticks()-start) / 1000); err != nil {
			return err
		}
		win.SwapBuffers()
	}
	return nil
}

// readSource returns the file at path, or fallback when path is empty.
func readSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading shader source: %w", err)
	}
	logger.Debug("loaded shader source", zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data), nil
}
