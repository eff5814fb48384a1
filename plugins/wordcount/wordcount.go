// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/stringcursor/internal/core/text"
	"github.com/bethropolis/stringcursor/internal/event"
	"github.com/bethropolis/stringcursor/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount reports word and rune counts when the field is submitted.
type WordCount struct {
	api plugin.FieldAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize subscribes to field submissions.
func (p *WordCount) Initialize(api plugin.FieldAPI) error {
	if api == nil {
		return fmt.Errorf("wordcount: nil field API")
	}
	p.api = api
	api.SubscribeEvent(event.TypeFieldSubmitted, p.handleSubmitted)
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) handleSubmitted(e event.Event) bool {
	data, ok := e.Data.(event.FieldData)
	if !ok {
		return false
	}
	p.api.SetStatusMessage("Words: %d, Runes: %d", CountWords(data.Text), utf8.RuneCountInString(data.Text))
	return false
}

// CountWords counts maximal runs of non-break runes, the same words the
// cursor jumps between.
func CountWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if text.IsBreak(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
