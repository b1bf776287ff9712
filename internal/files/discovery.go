package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNoDatasets is returned when a directory holds no dataset files
var ErrNoDatasets = errors.New("no dataset files found")

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery finds dataset files relative to a base path
type Discovery struct {
	basePath   string
	extensions []string
}

// NewDiscovery creates a discovery rooted at basePath for the given extensions
func NewDiscovery(basePath string, extensions ...string) *Discovery {
	if len(extensions) == 0 {
		extensions = []string{".json", ".xlsx"}
	}
	return &Discovery{basePath: basePath, extensions: extensions}
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) || d.basePath == "" {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

func (d *Discovery) matches(name string) bool {
	if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range d.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FindDatasets lists dataset files in dir, oldest first
func (d *Discovery) FindDatasets(dir string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !d.matches(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Name < files[j].Name
		}
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}

// ResolveDataset returns path itself when it is a file, or the latest
// dataset inside it when it is a directory
func (d *Discovery) ResolveDataset(path string) (string, error) {
	fullPath := d.resolve(path)
	info, err := os.Stat(fullPath)
	if err != nil || !info.IsDir() {
		// missing files are reported by the loader
		return fullPath, nil
	}

	datasets, err := d.FindDatasets(fullPath)
	if err != nil {
		return "", err
	}
	latest, ok := GetLatestFile(datasets)
	if !ok {
		return "", fmt.Errorf("%w in %s", ErrNoDatasets, fullPath)
	}
	return latest.Path, nil
}

// GetLatestFile returns the most recently modified file from a list
func GetLatestFile(files []FileInfo) (FileInfo, bool) {
	if len(files) == 0 {
		return FileInfo{}, false
	}

	latest := files[0]
	for _, file := range files[1:] {
		if !file.ModTime.Before(latest.ModTime) {
			latest = file
		}
	}
	return latest, true
}
