package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

const versionLayout = "20060102150405"

var (
	fileNameRe = regexp.MustCompile(`^(\d{14})_([a-z0-9_]+)\.sql$`)
	slugRe     = regexp.MustCompile(`[^a-z0-9]+`)
)

// File is one goose SQL migration on disk.
type File struct {
	Version int64
	Name    string
	Path    string
}

// Slug turns a free-form migration title into the snake_case part of a file name.
func Slug(title string) string {
	return strings.Trim(slugRe.ReplaceAllString(strings.ToLower(title), "_"), "_")
}

// NewSQLFile writes an empty up/down migration named <version>_<slug>.sql.
func NewSQLFile(dir, title string, now time.Time) (File, error) {
	if dir == "" {
		return File{}, fmt.Errorf("migrations dir is required")
	}
	slug := Slug(title)
	if slug == "" {
		return File{}, fmt.Errorf("migration title %q has no usable characters", title)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return File{}, fmt.Errorf("creating %s: %w", dir, err)
	}

	stamp := now.UTC().Format(versionLayout)
	version, _ := strconv.ParseInt(stamp, 10, 64)
	file := File{Version: version, Name: slug, Path: filepath.Join(dir, stamp+"_"+slug+".sql")}

	body := "-- +goose Up\n-- +goose StatementBegin\n-- " + slug +
		"\n-- +goose StatementEnd\n\n-- +goose Down\n-- +goose StatementBegin\n-- revert " + slug +
		"\n-- +goose StatementEnd\n"
	f, err := os.OpenFile(file.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return File{}, fmt.Errorf("creating migration: %w", err)
	}
	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return File{}, fmt.Errorf("writing %s: %w", file.Path, err)
	}
	return file, f.Close()
}

// Scan lists the migrations in dir ordered by version. Every malformed file is
// reported, not only the first one.
func Scan(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var (
		files []File
		errs  error
		seen  = map[int64]string{}
	)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		m := fileNameRe.FindStringSubmatch(entry.Name())
		if m == nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: expected <YYYYMMDDHHMMSS>_<name>.sql", entry.Name()))
			continue
		}
		version, _ := strconv.ParseInt(m[1], 10, 64)
		if prev, ok := seen[version]; ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: version %d already used by %s", entry.Name(), version, prev))
			continue
		}
		seen[version] = entry.Name()

		path := filepath.Join(dir, entry.Name())
		errs = multierr.Append(errs, checkDirectives(path))
		files = append(files, File{Version: version, Name: m[2], Path: path})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, errs
}

func checkDirectives(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(raw)
	var errs error
	for _, directive := range []string{"-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(text, directive) {
			errs = multierr.Append(errs, fmt.Errorf("%s: missing %q", filepath.Base(path), directive))
		}
	}
	return errs
}
