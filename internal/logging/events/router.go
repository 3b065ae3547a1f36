package events

import "github.com/atomicstack/squirrel-docs/internal/logging"

type RouterTracer struct{}

type WatchTracer struct{}

var (
	Router = RouterTracer{}
	Watch  = WatchTracer{}
)

func (RouterTracer) Navigate(from, to string) {
	logging.Trace("router.navigate", map[string]interface{}{"from": from, "to": to})
}

func (RouterTracer) Reject(target string, err error) {
	logging.Trace("router.reject", map[string]interface{}{"target": target, "error": err.Error()})
}

func (WatchTracer) Start(path string) {
	logging.Trace("watch.start", map[string]interface{}{"path": path})
}

func (WatchTracer) Change(path, op string) {
	logging.Trace("watch.change", map[string]interface{}{"path": path, "op": op})
}

func (WatchTracer) Reload(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("watch.reload", payload)
}

func (WatchTracer) Stop(path string) {
	logging.Trace("watch.stop", map[string]interface{}{"path": path})
}
