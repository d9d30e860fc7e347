package events

import "github.com/drawerfm/drawer/internal/logging"

type FSTracer struct{}

var FS = FSTracer{}

func (FSTracer) Load(location string, count int) {
	logging.Trace("fs.load", map[string]interface{}{"location": location, "count": count})
}

func (FSTracer) LoadError(location string, err error) {
	logging.Trace("fs.load.error", map[string]interface{}{"location": location, "error": err.Error()})
}

func (FSTracer) Watch(path string) {
	logging.Trace("fs.watch", map[string]interface{}{"path": path})
}

func (FSTracer) Change(op, path string) {
	logging.Trace("fs.change", map[string]interface{}{"op": op, "path": path})
}

func (FSTracer) Trash(paths []string) {
	logging.Trace("fs.trash", map[string]interface{}{"paths": paths})
}

func (FSTracer) Restore(paths []string) {
	logging.Trace("fs.restore", map[string]interface{}{"paths": paths})
}

func (FSTracer) EmptyTrash(count int) {
	logging.Trace("fs.trash.empty", map[string]interface{}{"count": count})
}

func (FSTracer) Rename(from, to string) {
	logging.Trace("fs.rename", map[string]interface{}{"from": from, "to": to})
}

func (FSTracer) NewEntry(path string, dir bool) {
	logging.Trace("fs.new", map[string]interface{}{"path": path, "dir": dir})
}

func (FSTracer) Paste(count int, move bool) {
	logging.Trace("fs.paste", map[string]interface{}{"count": count, "move": move})
}

func (FSTracer) Extract(path string) {
	logging.Trace("fs.extract", map[string]interface{}{"path": path})
}

func (FSTracer) Compress(dest string) {
	logging.Trace("fs.compress", map[string]interface{}{"dest": dest})
}

func (FSTracer) Open(path string) {
	logging.Trace("fs.open", map[string]interface{}{"path": path})
}
