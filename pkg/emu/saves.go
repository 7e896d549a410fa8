// Package emu provides the files an emulator keeps between runs.
package emu

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thelolagemann/goboy/pkg/utils"
)

// save file naming convention:
// <dir>/<cartridge fingerprint>/<timestamp>.sav

// Save represents a save file.
type Save struct {
	b         []byte // the save file data
	Path      string // the path to the save file
	Timestamp int64  // seconds since the Unix epoch the save was written
}

// NewSave writes b as a new save file for the cartridge identified
// by key, stamped with now. The data is written to a temporary file
// first, and renamed into place once complete, so that a crash never
// leaves a partial save behind.
func NewSave(dir, key string, b []byte, now time.Time) (*Save, error) {
	// create the save folder for the cartridge if it doesn't exist
	romSaveFolder := filepath.Join(dir, key)
	if err := os.MkdirAll(romSaveFolder, 0755); err != nil {
		return nil, err
	}

	s := &Save{
		b:         append([]byte(nil), b...),
		Path:      filepath.Join(romSaveFolder, fmt.Sprintf("%d.sav", now.Unix())),
		Timestamp: now.Unix(),
	}

	f, err := os.CreateTemp(romSaveFolder, fmt.Sprintf("%s.*", filepath.Base(s.Path)))
	if err != nil {
		return nil, err
	}
	if _, err := f.Write(s.b); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write to temporary save file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	if err := os.Rename(f.Name(), s.Path); err != nil {
		return nil, err
	}

	return s, nil
}

// LoadSaves loads all save files for the cartridge identified by key.
// The save files are sorted by their timestamp, with the newest save
// file being the first in the slice. If no save files exist, an empty
// slice is returned.
func LoadSaves(dir, key string) ([]*Save, error) {
	romSaveFolder := filepath.Join(dir, key)

	files, err := os.ReadDir(romSaveFolder)
	if os.IsNotExist(err) {
		return []*Save{}, nil
	} else if err != nil {
		return nil, err
	}

	saves := make([]*Save, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !isFileSaveFile(file.Name()) {
			continue
		}
		savePath := filepath.Join(romSaveFolder, file.Name())
		b, err := utils.LoadFile(savePath)
		if err != nil {
			return nil, err
		}
		saves = append(saves, &Save{
			b:         b,
			Path:      savePath,
			Timestamp: parseTimestampFromFilename(file.Name()),
		})
	}

	sort.SliceStable(saves, func(i, j int) bool {
		return saves[i].Timestamp > saves[j].Timestamp
	})

	return saves, nil
}

// Latest returns the newest save file for the cartridge identified by
// key, or nil if there is none.
func Latest(dir, key string) (*Save, error) {
	saves, err := LoadSaves(dir, key)
	if err != nil || len(saves) == 0 {
		return nil, err
	}
	return saves[0], nil
}

// Bytes returns the save file data.
func (s *Save) Bytes() []byte {
	return s.b
}

// parseTimestampFromFilename parses the timestamp from the given filename.
// The filename is expected to be in the format of "<...>.<timestamp>.sav"
// or "<timestamp>.sav". Where <timestamp> is the number of seconds since
// the Unix epoch, and <...> is any string.
func parseTimestampFromFilename(filename string) int64 {
	// strip the file extension
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))

	// get the timestamp from the filename (the last part preceded by a dot)
	parts := strings.Split(filename, ".")
	n, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// isFileSaveFile returns true if the given filename is a save file.
func isFileSaveFile(filename string) bool {
	return strings.HasSuffix(filename, ".sav")
}
