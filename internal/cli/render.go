package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/mohammadmehrani/CAD/internal/locale"
)

var (
	colorGreen = color.New(color.FgGreen).SprintFunc()
	colorRed   = color.New(color.FgRed).SprintFunc()
	colorBold  = color.New(color.Bold).SprintFunc()
	colorDim   = color.New(color.Faint).SprintFunc()
)

// renderer is the single output sink for the command tree. It is also the
// one listener for locale changes: text direction and confirmation live
// here and nowhere else.
type renderer struct {
	w    io.Writer
	json bool

	mu  sync.Mutex
	loc locale.Locale
	dir locale.Direction
}

func newRenderer(w io.Writer, jsonOut bool) *renderer {
	return &renderer{w: w, json: jsonOut, loc: locale.Persian, dir: locale.RTL}
}

// setLocale is the locale change listener.
func (r *renderer) setLocale(l locale.Locale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loc = l
	r.dir = l.Direction()
}

func (r *renderer) locale() locale.Locale {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loc
}

// bilingual picks the field matching the active locale, falling back to
// the other when one is empty.
func (r *renderer) bilingual(fa, en string) string {
	if r.locale() == locale.Persian {
		if fa != "" {
			return fa
		}
		return en
	}
	if en != "" {
		return en
	}
	return fa
}

// printJSON writes v as indented JSON.
func (r *renderer) printJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// result renders v as JSON in machine mode, otherwise runs human.
func (r *renderer) result(v any, human func()) error {
	if r.json {
		return r.printJSON(v)
	}
	human()
	return nil
}

func (r *renderer) okf(format string, args ...any) {
	fmt.Fprintf(r.w, "%s %s\n", colorGreen("✓"), fmt.Sprintf(format, args...))
}

func (r *renderer) infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// navigate reports a forced location change (logout -> home, expiry ->
// login). A terminal has no router, so the target is surfaced as a hint.
func (r *renderer) navigate(target string) {
	fmt.Fprintf(r.w, "%s\n", colorDim("→ "+target))
}
