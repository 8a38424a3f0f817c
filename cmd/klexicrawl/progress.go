package main

import (
	"io"

	"github.com/klexicrawl/klexicrawl/crawl"
	"github.com/schollz/progressbar/v3"
)

// progress renders a progress bar for crawl events.
// The total is only known once link collection finishes, so the bar is
// created lazily on the Started event.
type progress struct {
	out   io.Writer
	quiet bool
	bar   *progressbar.ProgressBar
}

func newProgress(out io.Writer, quiet bool) *progress {
	return &progress{out: out, quiet: quiet}
}

// handle implements crawl.ProgressFunc.
func (p *progress) handle(event crawl.ProgressEvent) {
	if p.quiet {
		return
	}
	switch event.Type {
	case crawl.ProgressStarted:
		p.bar = progressbar.NewOptions(event.Total,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("Processing articles"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	case crawl.ProgressCompleted, crawl.ProgressFailed:
		if p.bar != nil {
			_ = p.bar.Add(1)
		}
	case crawl.ProgressFinished:
		if p.bar != nil {
			_ = p.bar.Finish()
		}
	}
}
