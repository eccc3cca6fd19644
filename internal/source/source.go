package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

const (
	Stdin     = "-"
	Clipboard = "@clipboard"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Reader reads the transcript named by path. It exists so commands can be
// tested without a terminal or a clipboard.
type Reader struct {
	Stdin         io.Reader
	ReadClipboard func() (string, error)
}

func NewReader() *Reader {
	return &Reader{Stdin: os.Stdin, ReadClipboard: clipboard.ReadAll}
}

// Read returns the text of a file, of stdin for "-" or of the system
// clipboard for "@clipboard". A leading UTF-8 byte order mark is removed.
func (r *Reader) Read(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case Stdin, "":
		data, err = io.ReadAll(r.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	case Clipboard:
		text, err := r.ReadClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		data = []byte(text)
	default:
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}
	return string(bytes.TrimPrefix(data, bom)), nil
}

// Read uses the process stdin and clipboard.
func Read(path string) (string, error) {
	return NewReader().Read(path)
}

// FileInfo describes one transcript file found by Collect.
type FileInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

var transcriptExts = map[string]bool{
	".txt": true,
	".log": true,
}

// Collect expands directories into the transcript files below them. Paths
// naming files are returned as given, whatever their extension.
func Collect(paths []string) ([]FileInfo, error) {
	var files []FileInfo
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, FileInfo{Path: root, Mtime: info.ModTime().Unix(), Size: info.Size()})
			continue
		}
		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable dirs
			}
			if info.IsDir() {
				if path != root && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !transcriptExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			files = append(files, FileInfo{
				Path:  path,
				Mtime: info.ModTime().Unix(),
				Size:  info.Size(),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
