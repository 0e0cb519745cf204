// Package completer provides ready-made completion capabilities.
package completer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/readline-go/readline"
	"github.com/readline-go/readline/debug"
	istrings "github.com/readline-go/readline/strings"
)

// FilePathCompletionSeparator holds the characters that end the path
// token being completed: whitespace and the platform path separator.
var FilePathCompletionSeparator = string([]byte{' ', os.PathSeparator})

// FilePathCompleter completes file system paths. Directory listings
// are cached per directory for the lifetime of the completer; drop the
// completer to refresh.
type FilePathCompleter struct {
	// Filter keeps only entries it returns true for. Nil keeps all.
	Filter func(fi os.FileInfo) bool
	// IgnoreCase matches the typed prefix case-insensitively.
	IgnoreCase bool

	fileListCache map[string][]readline.Candidate
}

var _ readline.Completer = (*FilePathCompleter)(nil)

// cleanFilePath splits a typed path into the directory to list and the
// partial base name to match, expanding a leading ~/ and $VAR
// references first. A trailing separator means the whole directory is
// listed with no prefix filter.
func cleanFilePath(path string) (dir, base string, err error) {
	if path == "" {
		return ".", "", nil
	}

	endsWithSeparator := path[len(path)-1] == os.PathSeparator || path[len(path)-1] == '/'

	if len(path) >= 2 && path[:2] == "~"+string(os.PathSeparator) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", err
		}
		path = filepath.Join(home, path[1:])
		if endsWithSeparator {
			path += string(os.PathSeparator)
		}
	}
	path = os.ExpandEnv(path)

	if endsWithSeparator {
		return filepath.FromSlash(path), "", nil
	}
	return filepath.Dir(path), filepath.Base(path), nil
}

// Complete lists the directory named by the path token under the
// cursor and returns the entries matching the partial base name. The
// returned start offset covers only the base name, so choosing a
// candidate replaces just that final path element.
func (c *FilePathCompleter) Complete(line string, pos istrings.RuneNumber) (istrings.RuneNumber, []readline.Candidate) {
	if c.fileListCache == nil {
		c.fileListCache = map[string][]readline.Candidate{}
	}

	before := string([]rune(line)[:pos])
	path := before
	if i := strings.LastIndexByte(before, ' '); i >= 0 {
		path = before[i+1:]
	}

	dir, base, err := cleanFilePath(path)
	if err != nil {
		debug.Log("completer: clean file path failed: " + err.Error())
		return pos, nil
	}
	start := pos - istrings.RuneCountInString(base)

	if cached, ok := c.fileListCache[dir]; ok {
		return start, c.matching(cached, base)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		debug.Log("completer: read dir failed: " + err.Error())
		return pos, nil
	}

	candidates := make([]readline.Candidate, 0, len(entries))
	for _, entry := range entries {
		if c.Filter != nil {
			fi, err := entry.Info()
			if err != nil || !c.Filter(fi) {
				continue
			}
		}
		candidates = append(candidates, readline.Candidate{Display: entry.Name()})
	}
	c.fileListCache[dir] = candidates
	return start, c.matching(candidates, base)
}

func (c *FilePathCompleter) matching(candidates []readline.Candidate, prefix string) []readline.Candidate {
	if c.IgnoreCase {
		prefix = strings.ToLower(prefix)
	}
	out := make([]readline.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		name := cand.Display
		if c.IgnoreCase {
			name = strings.ToLower(name)
		}
		if strings.HasPrefix(name, prefix) {
			out = append(out, cand)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
