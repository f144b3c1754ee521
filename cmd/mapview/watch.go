package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/style"
)

// styleLoadedMsg carries a parsed style file. It is applied by whoever owns
// the session, never by the watcher goroutine.
type styleLoadedMsg struct {
	style *style.Style
	err   error
	path  string
}

// styleWatcher reparses a style file whenever it changes. It watches the
// parent directory so editors that replace the file on save are handled.
type styleWatcher struct {
	w    *fsnotify.Watcher
	path string
	out  chan styleLoadedMsg
	log  *zap.Logger
}

func watchStyle(path string, log *zap.Logger) (*styleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	sw := &styleWatcher{w: w, path: abs, out: make(chan styleLoadedMsg, 1), log: log}
	go sw.run()
	return sw, nil
}

func (sw *styleWatcher) run() {
	defer close(sw.out)
	for {
		select {
		case ev, ok := <-sw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			sw.log.Debug("style file changed", zap.String("path", ev.Name), zap.Stringer("op", ev.Op))
			st, err := style.Load(sw.path)
			sw.deliver(styleLoadedMsg{style: st, err: err, path: sw.path})
		case err, ok := <-sw.w.Errors:
			if !ok {
				return
			}
			sw.log.Warn("style watcher error", zap.Error(err))
		}
	}
}

// deliver keeps only the newest pending reload.
func (sw *styleWatcher) deliver(msg styleLoadedMsg) {
	select {
	case sw.out <- msg:
	default:
		select {
		case <-sw.out:
		default:
		}
		sw.out <- msg
	}
}

func (sw *styleWatcher) updates() <-chan styleLoadedMsg {
	return sw.out
}

func (sw *styleWatcher) close() error {
	return sw.w.Close()
}
