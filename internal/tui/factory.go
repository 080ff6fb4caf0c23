package tui

import (
	"strings"
	"time"

	"github.com/dimzfresh/widgetkit/core"
	"github.com/dimzfresh/widgetkit/internal/config"
	"github.com/dimzfresh/widgetkit/widgets"
)

// FactoryFromConfig builds the declared widget set in declaration order.
// Unknown types are skipped; empty ids get generated ones.
func FactoryFromConfig(cfg config.Config, sched core.Scheduler) core.Factory {
	return core.FactoryFunc(func() []core.Widget {
		out := make([]core.Widget, 0, len(cfg.Widgets))
		for _, wc := range cfg.Widgets {
			switch strings.ToLower(strings.TrimSpace(wc.Type)) {
			case "banner":
				out = append(out, widgets.NewBanner(core.ID(wc.ID), wc.Title, wc.Text))
			case "counter":
				out = append(out, widgets.NewCounter(core.ID(wc.ID), wc.Title))
			case "timer":
				interval := time.Duration(wc.IntervalMS) * time.Millisecond
				if interval <= 0 {
					interval = 5 * time.Second
				}
				out = append(out, widgets.NewTimer(core.ID(wc.ID), wc.Title, interval, sched))
			}
		}
		return out
	})
}
