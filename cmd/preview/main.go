// Preview watches a folder for fresh forma exports and displays the newest
// one in a window. Left and right arrows cycle through everything seen.
package main

import (
	"flag"
	"fmt"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/scottkirkwood/forma"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var folderFlag = flag.String("folder", ".", "export folder to watch")

// refreshEvent tells the window loop the gallery gained or replaced an
// image; Send is safe from the watcher goroutine.
type refreshEvent struct{}

// tmpFileRx matches the in-progress names the atomic writer creates next
// to the final export.
var tmpFileRx = regexp.MustCompile(`^forma\.\d+`)

func main() {
	flag.Parse()
	folder := *folderFlag

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("preview: creating watcher: %v", err)
	}
	defer watcher.Close()

	g := newGallery()
	if err := g.scan(folder); err != nil {
		log.Fatalf("preview: reading %q: %v", folder, err)
	}
	if err := watcher.Add(folder); err != nil {
		log.Fatalf("preview: watching %q: %v", folder, err)
	}
	fmt.Printf("Monitoring folder %q\n", folder)

	driver.Main(func(s screen.Screen) {
		names, imgs := g.view()

		// Size the window to the newest image, within reason.
		winSize := image.Point{X: 500, Y: 500}
		if len(imgs) > 0 {
			rect := imgs[len(imgs)-1].Bounds()
			winSize = image.Point{X: rect.Dx(), Y: rect.Dy()}
		}
		if winSize.X > 1000 {
			winSize.X = 1000
		}
		if winSize.Y > 768 {
			winSize.Y = 768
		}

		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
			Title:  "forma preview",
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		defer w.Release()

		b, err := s.NewBuffer(winSize)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer func() { b.Release() }()

		w.Fill(b.Bounds(), color.White, draw.Src)
		w.Publish()

		go watchForEvents(watcher, g, w)

		var sz size.Event
		i := len(imgs) - 1
		for {
			e := w.NextEvent()
			switch e := e.(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					break
				}
				repaint := false
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					if len(imgs) > 0 {
						i = (i + 1) % len(imgs)
						repaint = true
					}
				case key.CodeLeftArrow:
					if len(imgs) > 0 {
						i = (i + len(imgs) - 1) % len(imgs)
						repaint = true
					}
				case key.CodeR:
					// resize the buffer to the current image
					if i >= 0 && i < len(imgs) {
						rect := imgs[i].Bounds()
						sz.WidthPx = rect.Dx()
						sz.HeightPx = rect.Dy()
						repaint = true
					}
				}
				if repaint {
					b = rebuffer(s, b, bufSize(sz, winSize))
					if b == nil {
						return
					}
					fmt.Printf("Showing %s\n", names[i])
					w.Send(paint.Event{})
				}

			case refreshEvent:
				names, imgs = g.view()
				i = len(imgs) - 1
				b = rebuffer(s, b, bufSize(sz, winSize))
				if b == nil {
					return
				}
				if i >= 0 {
					fmt.Printf("Showing %s\n", names[i])
				}
				w.Send(paint.Event{})

			case paint.Event:
				if i < 0 || i >= len(imgs) {
					break
				}
				img := imgs[i]
				draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)
				dp := forma.VpCenter(img, sz.WidthPx, sz.HeightPx)
				if dp != (image.Point{}) {
					w.Fill(sz.Bounds(), color.Black, draw.Src)
				}
				w.Upload(dp, b, b.Bounds())
				w.Publish()

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				fmt.Printf("Screen error: %v\n", e)
				return
			}
		}
	})
}

// watchForEvents forwards gallery changes into the window loop.
func watchForEvents(watcher *fsnotify.Watcher, g *gallery, w screen.Window) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if g.addOrUpdate(event.Name) {
					w.Send(refreshEvent{})
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println("ERROR", err)
		}
	}
}

// rebuffer swaps the window buffer for one of the given size.
func rebuffer(s screen.Screen, old screen.Buffer, size image.Point) screen.Buffer {
	old.Release()
	b, err := s.NewBuffer(size)
	if err != nil {
		fmt.Println(err)
		return nil
	}
	return b
}

func bufSize(sz size.Event, fallback image.Point) image.Point {
	if p := sz.Size(); p.X > 0 && p.Y > 0 {
		return p
	}
	return fallback
}

// gallery is the set of decoded exports, oldest first. The watcher
// goroutine writes, the window loop reads.
type gallery struct {
	mu    sync.Mutex
	names []string
	imgs  []image.Image
	crc   map[string]uint64
}

func newGallery() *gallery {
	return &gallery{crc: make(map[string]uint64)}
}

// scan preloads every displayable export already in the folder, in
// modification order.
func (g *gallery) scan(folder string) error {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return err
	}
	type stamped struct {
		name string
		at   time.Time
	}
	var files []stamped
	for _, e := range entries {
		name := filepath.Join(folder, e.Name())
		if e.IsDir() || !displayable(name) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, stamped{name, info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].at.Before(files[j].at) })

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}
	// DecodeImages reports basenames, so rebuild folder-relative paths
	// to match the watcher's event names.
	okNames, imgs := forma.DecodeImages(names)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.names = make([]string, len(okNames))
	for i, n := range okNames {
		full := filepath.Join(folder, n)
		g.names[i] = full
		g.crc[full] = fileChecksum(full)
	}
	g.imgs = imgs
	return nil
}

// addOrUpdate decodes fname into the gallery when its contents actually
// changed. It reports whether the display should refresh.
func (g *gallery) addOrUpdate(fname string) bool {
	if !displayable(fname) {
		return false
	}
	checksum := fileChecksum(fname)
	if checksum == 0 {
		return false
	}
	g.mu.Lock()
	unchanged := g.crc[fname] == checksum
	g.crc[fname] = checksum
	g.mu.Unlock()
	if unchanged {
		return false
	}

	f, err := os.Open(fname)
	if err != nil {
		fmt.Printf("Open %q: %v\n", fname, err)
		return false
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		fmt.Printf("Decode %q: %v\n", fname, err)
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i, n := range g.names {
		if n == fname {
			g.imgs[i] = img
			return true
		}
	}
	g.names = append(g.names, fname)
	g.imgs = append(g.imgs, img)
	return true
}

// view snapshots the gallery for the window loop.
func (g *gallery) view() ([]string, []image.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	names := make([]string, len(g.names))
	copy(names, g.names)
	imgs := make([]image.Image, len(g.imgs))
	copy(imgs, g.imgs)
	return names, imgs
}

// displayable reports whether fname is a finished export the decoder can
// show. The writer's temp files are skipped by name.
func displayable(fname string) bool {
	if tmpFileRx.MatchString(filepath.Base(fname)) {
		return false
	}
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func fileChecksum(fname string) uint64 {
	h := crc64.New(crc64.MakeTable(crc64.ECMA))
	bytes, err := os.ReadFile(fname)
	if err != nil {
		fmt.Printf("Readfile error %q: %v\n", fname, err)
		return 0
	}
	h.Write(bytes)
	return h.Sum64()
}
