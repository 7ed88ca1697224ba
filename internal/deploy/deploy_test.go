package deploy

import (
	"context"
	"crypto/md5"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseETag(t *testing.T) {
	sum := md5.Sum([]byte("hello"))

	tests := []struct {
		name string
		eTag string
		ok   bool
	}{
		{"quoted", `"5d41402abc4b2a76b9719d911017c592"`, true},
		{"unquoted", `5d41402abc4b2a76b9719d911017c592`, true},
		{"multipart", `"5d41402abc4b2a76b9719d911017c592-3"`, false},
		{"garbage", `"not-hex"`, false},
		{"empty", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseETag(tt.eTag)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != sum {
				t.Errorf("Expected %x, got %x", sum, got)
			}
		})
	}
}

func TestCacheControl(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"static/cartridges/zelda-1-front.jpg", "max-age=1209600,public"},
		{"static/gbhwdb.css", "max-age=3600,public"},
		{"cartridges/mbc1.html", "max-age=86400,public"},
		{"consoles/dmg.html", "max-age=86400,public"},
		{"index.html", "max-age=3600,public"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			file := LocalFile{Key: tt.key}
			if got := file.CacheControl(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestBuildPlan(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	matching := md5.Sum([]byte("same"))
	changed := md5.Sum([]byte("changed"))

	local := []LocalFile{
		{Key: "cartridges/index.html", MD5: matching},
		{Key: "cartridges/mbc1.html", MD5: changed},
		{Key: "cartridges/mbc5.html", MD5: changed},
	}
	remote := []RemoteFile{
		{Key: "cartridges/index.html", ETag: matching, HasETag: true, LastModified: now},
		{Key: "cartridges/mbc1.html", ETag: md5.Sum([]byte("old")), HasETag: true, LastModified: now},
		{Key: "cartridges/huc1.html", LastModified: now.Add(-5 * 7 * 24 * time.Hour)},
		{Key: "cartridges/huc3.html", LastModified: now.Add(-24 * time.Hour)},
	}

	toUpload, toDelete := BuildPlan(local, remote, now)

	uploads := make(map[string]bool)
	for _, file := range toUpload {
		uploads[file.Key] = true
	}
	if uploads["cartridges/index.html"] {
		t.Error("Expected unchanged file to be skipped")
	}
	if !uploads["cartridges/mbc1.html"] {
		t.Error("Expected changed file to be scheduled")
	}
	if !uploads["cartridges/mbc5.html"] {
		t.Error("Expected new file to be scheduled")
	}

	if len(toDelete) != 1 || toDelete[0].Key != "cartridges/huc1.html" {
		t.Errorf("Expected only the 5-week stale orphan to be deleted, got %v", toDelete)
	}
}

func TestScanLocal(t *testing.T) {
	dir := t.TempDir()
	content := []byte("<html></html>")
	if err := os.MkdirAll(filepath.Join(dir, "cartridges"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cartridges", "index.html"), content, 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ScanLocal(context.Background(), dir)
	if err != nil {
		t.Fatalf("ScanLocal failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}

	file := files[0]
	if file.Key != "cartridges/index.html" {
		t.Errorf("Expected slash-separated key, got %s", file.Key)
	}
	if file.Len != int64(len(content)) {
		t.Errorf("Expected length %d, got %d", len(content), file.Len)
	}
	if file.MD5 != md5.Sum(content) {
		t.Error("Expected MD5 of the file content")
	}
}
