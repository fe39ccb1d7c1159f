package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"codeberg.org/snonux/hanzirecall/internal/search"
)

// Getter performs a blocking GET and returns the whole response body
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Downloader fetches clips from the dictionary site into a collection directory
type Downloader struct {
	baseURL string
	getter  Getter
	logger  *zap.Logger
}

// NewDownloader creates a clip downloader for the site at baseURL
func NewDownloader(baseURL string, getter Getter, logger *zap.Logger) *Downloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Downloader{
		baseURL: baseURL,
		getter:  getter,
		logger:  logger,
	}
}

// DownloadResult saves the clip of result as <dir>/<hanzi>.mp3 and returns
// the written path
func (d *Downloader) DownloadResult(ctx context.Context, result search.Result, dir string) (string, error) {
	if err := ValidateHeadword(result.Hanzi); err != nil {
		return "", err
	}

	clipURL, err := URLFor(d.baseURL, result)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(dir, FileName(result.Hanzi))
	if err := d.Download(ctx, clipURL, outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}

// Download fetches url and writes the body to outputPath, replacing any
// existing file. A partially written file is left in place on error.
func (d *Downloader) Download(ctx context.Context, url, outputPath string) error {
	d.logger.Debug("Downloading audio", zap.String("url", url), zap.String("path", outputPath))

	data, err := d.getter.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to download audio: %w", err)
	}

	file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to open the file %q for writing: %w", outputPath, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write audio file %q: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close audio file %q: %w", outputPath, err)
	}

	d.logger.Debug("Saved audio", zap.String("path", outputPath), zap.Int("bytes", len(data)))
	return nil
}
