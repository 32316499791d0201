package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/fsnotify/fsnotify"

	"dockui/pkg/diag"
	"dockui/pkg/resource"
	stdnet "dockui/std/net"
)

const (
	viewWidth  = 1024
	viewHeight = 700
)

func main() {
	if len(os.Args) > 2 && os.Args[2] == "-v" {
		diag.Verbose(os.Stderr, slog.LevelDebug)
	}

	a := app.New()
	w := a.NewWindow("dockview")
	w.Resize(fyne.NewSize(viewWidth, viewHeight+68))

	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, viewWidth, viewHeight)))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a scene path or URL and press Enter")

	v := &viewer{window: w, image: canvasImg, status: status}

	entry := widget.NewEntry()
	entry.SetPlaceHolder("testdata/scenes/settings.toml")
	entry.OnSubmitted = v.open

	top := container.NewBorder(nil, nil, nil, nil, entry)
	w.SetContent(container.NewBorder(top, status, nil, nil, canvasImg))
	w.Canvas().Focus(entry)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		status.SetText("Live reload disabled: " + err.Error())
	} else {
		v.watcher = watcher
		go v.watch()
		defer watcher.Close()
	}

	if len(os.Args) > 1 {
		entry.SetText(os.Args[1])
		v.open(os.Args[1])
	}

	w.ShowAndRun()
}

type viewer struct {
	window  fyne.Window
	image   *canvas.Image
	status  *widget.Label
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	current string
}

func (v *viewer) path() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// open loads uri and, for local files, watches its directory so saves
// re-render the scene.
func (v *viewer) open(uri string) {
	v.mu.Lock()
	prev := v.current
	v.current = uri
	v.mu.Unlock()

	if v.watcher != nil && prev != "" && !stdnet.IsNetworkURL(prev) {
		_ = v.watcher.Remove(filepath.Dir(prev))
	}
	if v.watcher != nil && !stdnet.IsNetworkURL(uri) {
		if err := v.watcher.Add(filepath.Dir(uri)); err != nil {
			diag.Logger().Warn("dockview: watch failed", "path", uri, "err", err)
		}
	}
	go v.render(uri)
}

func (v *viewer) render(uri string) {
	fyne.Do(func() { v.status.SetText("Loading " + uri + "...") })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	img, err := resource.RenderURI(ctx, resource.NewFetcher(""), uri, resource.Options{
		Width:  viewWidth,
		Height: viewHeight,
	})
	fyne.Do(func() {
		if err != nil {
			v.status.SetText("Error: " + err.Error())
			return
		}
		v.image.Image = img
		v.image.Refresh()
		v.status.SetText(fmt.Sprintf("%s (%s)", uri, time.Now().Format("15:04:05")))
		v.window.SetTitle("dockview - " + filepath.Base(uri))
	})
}

func (v *viewer) watch() {
	for {
		select {
		case ev, ok := <-v.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if current := v.path(); filepath.Clean(ev.Name) == filepath.Clean(current) {
				diag.Logger().Info("dockview: reloading", "path", ev.Name)
				v.render(current)
			}
		case err, ok := <-v.watcher.Errors:
			if !ok {
				return
			}
			diag.Logger().Warn("dockview: watcher error", "err", err)
		}
	}
}
