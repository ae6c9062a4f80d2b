package morph

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// defaultDefsURL points at the Logeion short-definitions file used as
// the gloss source.
const defaultDefsURL = "https://raw.githubusercontent.com/helmadik/shortdefs/master/shortdefsGreekEnglishLogeion"

// EnsureDefinitions checks whether the definitions file exists at
// path. If not, it downloads it from the canonical location. The file
// is written atomically via a temp file so an interrupted download
// never leaves a truncated definitions file behind.
func EnsureDefinitions(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return DownloadDefinitions(ctx, defaultDefsURL, path)
}

// DownloadDefinitions fetches the definitions file at url into path.
func DownloadDefinitions(ctx context.Context, url, path string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "greekvocab-cli")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download definitions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download definitions: server returned %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".shortdefs-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write definitions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
