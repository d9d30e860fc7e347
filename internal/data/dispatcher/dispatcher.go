// Package dispatcher turns backend watcher events into update-loop
// results. The watcher follows one directory, but events from a
// directory the user already left can still race in around a Follow
// switch; the dispatcher filters those out.
package dispatcher

import (
	"path/filepath"

	"github.com/drawerfm/drawer/internal/backend"
)

type Result struct {
	ReloadNeeded bool
	Err          error
}

type Dispatcher struct {
	dir string
}

func New() *Dispatcher {
	return &Dispatcher{}
}

// SetDir records the directory the visible listing shows. Empty means
// a virtual listing (trash, recents, search results) with no single
// directory behind it.
func (d *Dispatcher) SetDir(dir string) {
	d.dir = dir
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Kind == backend.KindError || evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	if d.dir == "" {
		return res
	}
	if evt.Path == d.dir || filepath.Dir(evt.Path) == d.dir {
		res.ReloadNeeded = true
	}
	return res
}
