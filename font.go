package ggchart

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var defaultFont struct {
	once   sync.Once
	source *text.FontSource
	err    error
}

// DefaultFontSource returns the Go Regular font shared by all charts that
// do not set their own with WithFontSource. It is parsed once.
func DefaultFontSource() (*text.FontSource, error) {
	defaultFont.once.Do(func() {
		defaultFont.source, defaultFont.err = text.NewFontSource(goregular.TTF)
		if defaultFont.err == nil {
			Logger().Debug("ggchart: default font loaded", "name", defaultFont.source.Name())
		}
	})
	return defaultFont.source, defaultFont.err
}
