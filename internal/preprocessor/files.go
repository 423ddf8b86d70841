package preprocessor

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileLoader reads #include targets from disk, stripping a UTF-8 BOM if
// present — BOM handling belongs at the file-read boundary, not the
// lexer's byte stream. It memoises reads so repeated #include of an
// unguarded file (legal, just wasteful) doesn't re-hit the filesystem.
type FileLoader struct {
	mu    sync.Mutex
	cache map[string]fileResult
}

type fileResult struct {
	text   string
	exists bool
}

// NewFileLoader returns a disk-backed Loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{cache: make(map[string]fileResult)}
}

func (l *FileLoader) exists(path string) bool {
	res := l.read(path)
	return res.exists
}

// Load returns path's decoded text and whether it was found.
func (l *FileLoader) Load(path string) (string, bool) {
	res := l.read(path)
	return res.text, res.exists
}

func (l *FileLoader) read(path string) fileResult {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	l.mu.Lock()
	if res, ok := l.cache[abs]; ok {
		l.mu.Unlock()
		return res
	}
	l.mu.Unlock()

	raw, err := os.ReadFile(path)
	res := fileResult{}
	if err == nil {
		res.exists = true
		res.text = stripBOM(raw)
	}

	l.mu.Lock()
	l.cache[abs] = res
	l.mu.Unlock()
	return res
}

// stripBOM removes a leading byte-order mark using the standard BOM-
// sniffing transformer rather than a hand-rolled byte comparison.
func stripBOM(raw []byte) string {
	transformer := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(transformer, raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// Prefetch loads every path in paths concurrently ahead of a single-
// threaded expansion pass: the pipeline itself stays synchronous, only
// the disk I/O of a whole include chain overlaps. A later sequential
// Load of any prefetched path is then cache-served.
func (l *FileLoader) Prefetch(paths []string) error {
	var g errgroup.Group
	for _, p := range paths {
		p := p
		g.Go(func() error {
			l.read(p)
			return nil
		})
	}
	return g.Wait()
}
