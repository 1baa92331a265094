package adapters

import (
	"context"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"os"
	"path/filepath"
	"strings"
)

const AudioRoutePrefix = "/audio"

type localAudioStore struct {
	logger outbound.LoggerPort
	dir    string
}

// NewLocalAudioStore writes assets into dir; the HTTP server serves that
// directory under AudioRoutePrefix.
func NewLocalAudioStore(dir string, logger outbound.LoggerPort) (outbound.AudioStorePort, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory %s: %w", dir, err)
	}
	return &localAudioStore{
		logger: logger,
		dir:    dir,
	}, nil
}

func (s *localAudioStore) Save(_ context.Context, req outbound.SaveAudioRequest) (string, error) {
	if req.FileName == "" || filepath.Base(req.FileName) != req.FileName {
		return "", fmt.Errorf("invalid audio file name %q", req.FileName)
	}

	path := filepath.Join(s.dir, req.FileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, req.Content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to move audio file into place: %w", err)
	}

	url := strings.TrimSuffix(req.BaseURL, "/") + AudioRoutePrefix + "/" + req.FileName
	s.logger.DebugWithFields("Stored audio file", map[string]interface{}{
		"path": path,
		"url":  url,
	})
	return url, nil
}
