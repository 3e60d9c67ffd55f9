package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mkacz/turnip"
	"github.com/mkacz/turnip/internal/observability"
	"go.uber.org/zap"
)

// loadWorld reads a world in the binary format from path.
func loadWorld(path string) (*turnip.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w := turnip.NewWorld()
	n, err := w.ReadFrom(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	observability.GetLogger().Debug("world loaded",
		zap.String("path", path),
		zap.Int64("bytes", n),
		zap.Int("loops", w.Len()))
	return w, nil
}

// loadOrCreateWorld is like loadWorld but returns an empty world if path does
// not exist.
func loadOrCreateWorld(path string) (*turnip.World, error) {
	w, err := loadWorld(path)
	if errors.Is(err, fs.ErrNotExist) {
		observability.GetLogger().Info("starting a new world", zap.String("path", path))
		return turnip.NewWorld(), nil
	}
	return w, err
}

// saveWorld writes w to path in the binary format.
func saveWorld(path string, w *turnip.World) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	n, err := w.WriteTo(bw)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	observability.GetLogger().Debug("world saved",
		zap.String("path", path),
		zap.Int64("bytes", n),
		zap.Int("loops", w.Len()))
	return nil
}
