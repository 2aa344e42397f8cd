// Package meta gathers the per-entry filesystem metadata a listing row
// is built from. One Lstat per entry; symlinks get one extra Stat to
// probe target validity.
package meta

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FileType is the node kind of a listed entry.
type FileType int

const (
	TypeFile FileType = iota
	TypeDir
	TypeSymlink
	TypePipe
	TypeSocket
	TypeBlockDevice
	TypeCharDevice
	TypeSpecial
)

// Size buckets used for color selection in the size column.
const (
	SmallSizeLimit  = 4 * 1024        // below: small
	MediumSizeLimit = 4 * 1024 * 1024 // below: medium, above: large
)

// Age buckets used for color selection in the date column.
const (
	HourOldLimit = time.Hour
	DayOldLimit  = 24 * time.Hour
)

// Meta describes one filesystem entry.
type Meta struct {
	Name    string
	Path    string // absolute
	Type    FileType
	Mode    fs.FileMode
	Size    int64
	ModTime time.Time
	Owner   string
	Group   string

	// Symlink fields; LinkOK reports whether the target resolves.
	LinkTarget string
	LinkOK     bool
}

// IsDir reports whether the entry is a directory.
func (m *Meta) IsDir() bool {
	return m.Type == TypeDir
}

// Gather stats one path (without following symlinks) and fills a Meta.
func Gather(path string) (*Meta, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Lstat(abs)
	if err != nil {
		return nil, err
	}
	return fromInfo(abs, info), nil
}

// List gathers metadata for every entry of a directory. Entries whose
// Lstat fails after the directory read are skipped rather than failing
// the listing.
func List(dir string, includeHidden bool) ([]*Meta, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	metas := make([]*Meta, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !includeHidden && len(de.Name()) > 0 && de.Name()[0] == '.' {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		metas = append(metas, fromInfo(filepath.Join(abs, de.Name()), info))
	}
	return metas, nil
}

func fromInfo(abs string, info fs.FileInfo) *Meta {
	m := &Meta{
		Name:    info.Name(),
		Path:    abs,
		Type:    typeOf(info.Mode()),
		Mode:    info.Mode(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	m.Owner, m.Group = ownership(info)

	if m.Type == TypeSymlink {
		if target, err := os.Readlink(abs); err == nil {
			m.LinkTarget = target
		}
		_, err := os.Stat(abs)
		m.LinkOK = err == nil
	}
	return m
}

func typeOf(mode fs.FileMode) FileType {
	switch {
	case mode.IsDir():
		return TypeDir
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode&fs.ModeNamedPipe != 0:
		return TypePipe
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeSpecial
	}
}

// SortKey selects the listing order.
type SortKey string

const (
	SortByName SortKey = "name"
	SortBySize SortKey = "size"
	SortByTime SortKey = "time"
)

// Sort orders entries in place: directories first, then by the chosen
// key, optionally reversed (reversal keeps directories first).
func Sort(metas []*Meta, key SortKey, reverse bool) {
	sort.SliceStable(metas, func(i, j int) bool {
		a, b := metas[i], metas[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		var less bool
		switch key {
		case SortBySize:
			less = a.Size > b.Size
		case SortByTime:
			less = a.ModTime.After(b.ModTime)
		default:
			less = a.Name < b.Name
		}
		if reverse {
			return !less
		}
		return less
	})
}
