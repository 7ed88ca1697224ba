// Package deploy syncs the rendered build directory to the site's S3 bucket.
// Only files whose content differs from the remote ETag are uploaded, and
// remote objects with no local counterpart are deleted after a grace period.
package deploy

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// staleAfter is how long an orphaned remote object is kept before deletion.
// The grace period keeps pages reachable for clients holding cached HTML that
// still links to them.
const staleAfter = 4 * 7 * 24 * time.Hour

// LocalFile is one file found in the build directory.
type LocalFile struct {
	AbsolutePath string
	Key          string
	Len          int64
	MD5          [16]byte
}

// CacheControl returns the cache policy tier for the file's key. Photos are
// immutable once published and cache longest; generated pages cache a day;
// everything else stays short so fixes propagate quickly.
func (f LocalFile) CacheControl() string {
	const (
		short  = "max-age=3600,public"
		medium = "max-age=86400,public"
		long   = "max-age=1209600,public"
	)
	if strings.HasPrefix(f.Key, "static/") {
		if strings.HasSuffix(f.Key, ".jpg") {
			return long
		}
		return short
	}
	if strings.HasPrefix(f.Key, "cartridges/") || strings.HasPrefix(f.Key, "consoles/") {
		return medium
	}
	return short
}

// RemoteFile is one object listed in the target bucket.
type RemoteFile struct {
	Key          string
	Len          int64
	LastModified time.Time
	ETag         [16]byte
	HasETag      bool
}

func fileMD5(path string) ([16]byte, error) {
	var sum [16]byte
	file, err := os.Open(path)
	if err != nil {
		return sum, err
	}
	defer file.Close()

	hasher := md5.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return sum, err
	}
	copy(sum[:], hasher.Sum(nil))
	return sum, nil
}

func scanLocalFile(root, path string) (LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LocalFile{}, err
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return LocalFile{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return LocalFile{}, err
	}
	sum, err := fileMD5(path)
	if err != nil {
		return LocalFile{}, err
	}
	return LocalFile{
		AbsolutePath: abs,
		Key:          filepath.ToSlash(rel),
		Len:          info.Size(),
		MD5:          sum,
	}, nil
}

func listLocalPaths(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk build directory: %w", err)
	}
	return paths, nil
}

// parseETag decodes an S3 ETag header into an MD5 sum. Multipart uploads use
// a different ETag form and fail to parse, which forces a re-upload.
func parseETag(eTag string) ([16]byte, bool) {
	var sum [16]byte
	eTag = strings.TrimPrefix(eTag, `"`)
	eTag = strings.TrimSuffix(eTag, `"`)
	raw, err := hex.DecodeString(eTag)
	if err != nil || len(raw) != md5.Size {
		return sum, false
	}
	copy(sum[:], raw)
	return sum, true
}
