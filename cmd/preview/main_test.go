package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, fname string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if err := os.WriteFile(fname, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile(%q): %v", fname, err)
	}
}

func TestDisplayable(t *testing.T) {
	tests := []struct {
		fname string
		want  bool
	}{
		{"exports/forma-abc123-5f.png", true},
		{"exports/forma-abc123-5f.gif", true},
		{"shot.JPG", true},
		{"exports/forma-abc123-5f.svg", false},
		{"exports/forma-abc123-5f.pdf", false},
		{"exports/forma.123456789.png", false}, // atomic writer temp file
		{"notes.txt", false},
	}
	for _, tt := range tests {
		if got := displayable(tt.fname); got != tt.want {
			t.Errorf("displayable(%q) = %v, want %v", tt.fname, got, tt.want)
		}
	}
}

func TestGalleryAddOrUpdate(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "forma-one.png")
	writePNG(t, fname, color.White)

	g := newGallery()
	if !g.addOrUpdate(fname) {
		t.Fatal("first add should refresh")
	}
	if g.addOrUpdate(fname) {
		t.Error("unchanged file should not refresh")
	}

	writePNG(t, fname, color.Black)
	if !g.addOrUpdate(fname) {
		t.Error("rewritten file should refresh")
	}

	names, imgs := g.view()
	if len(names) != 1 || len(imgs) != 1 {
		t.Fatalf("got %d names, %d images, want 1 and 1", len(names), len(imgs))
	}
	if names[0] != fname {
		t.Errorf("name = %q, want %q", names[0], fname)
	}
}

func TestGalleryIgnoresNonImages(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "forma-doc.svg")
	if err := os.WriteFile(fname, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	g := newGallery()
	if g.addOrUpdate(fname) {
		t.Error("svg export should not enter the gallery")
	}
}

func TestScanOrdersByModTime(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "forma-b.png")
	newer := filepath.Join(dir, "forma-a.png")
	writePNG(t, older, color.White)
	writePNG(t, newer, color.Black)

	base := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, base, base); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}

	g := newGallery()
	if err := g.scan(dir); err != nil {
		t.Fatalf("scan: %v", err)
	}
	names, imgs := g.view()
	if len(names) != 2 || len(imgs) != 2 {
		t.Fatalf("got %d names, %d images, want 2 and 2", len(names), len(imgs))
	}
	if names[0] != older || names[1] != newer {
		t.Errorf("order = %v, want oldest first [%s %s]", names, older, newer)
	}
	if g.addOrUpdate(older) {
		t.Error("scan should have recorded checksums, so re-adding should not refresh")
	}
}
