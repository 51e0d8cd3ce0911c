package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/splo1t/rotcipher/assets"
	"github.com/splo1t/rotcipher/internal/domain"
	"github.com/splo1t/rotcipher/internal/version"
)

// Renderer writes menu screens and results.
type Renderer struct {
	out   io.Writer
	theme Theme
}

// NewRenderer builds a renderer over out.
func NewRenderer(out io.Writer, theme Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

func (r *Renderer) line(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Renderer) rule(ch string, width int) string {
	return r.theme.Rule.Render(strings.Repeat(ch, width))
}

// Banner prints the title art.
func (r *Renderer) Banner() {
	r.line("")
	r.line(r.theme.Banner.Render(strings.TrimRight(assets.Banner, "\n")))
	r.line(r.theme.Tagline.Render(fmt.Sprintf("ROT CIPHER TOOL %s", version.Version)))
	r.line(r.rule("=", 56))
}

// Menu prints the numbered choices with the current shift.
func (r *Renderer) Menu(shift domain.ShiftValue) {
	t := r.theme
	r.line("")
	r.line(t.Title.Render("MAIN MENU"))
	r.line(r.rule("=", 40))
	r.line(t.Encode.Render("[1]") + " Encode Text")
	r.line(t.Decode.Render("[2]") + " Decode Text")
	r.line(t.Shift.Render("[3]") + " Change ROT Value (Current: " + t.Emphasis.Render(fmt.Sprint(shift.Int())) + ")")
	r.line(t.History.Render("[4]") + " View History")
	r.line(t.Exit.Render("[5]") + " Exit")
	r.line(r.rule("=", 40))
}

// Section prints a heading for one menu action.
func (r *Renderer) Section(title string) {
	r.line("")
	r.line(r.theme.Title.Render(title))
	r.line(r.rule("-", 40))
}

// Prompt writes a prompt without a trailing newline.
func (r *Renderer) Prompt(text string) {
	fmt.Fprint(r.out, text)
}

// Outcome prints the original and transformed text. Only labels are styled;
// user text is written verbatim so tabs and spacing survive.
func (r *Renderer) Outcome(entry domain.LogEntry) {
	verb := "Encoded:"
	if entry.Operation == domain.Decode {
		verb = "Decoded:"
	}
	r.line("")
	r.line(r.theme.Label.Render("Original:") + " " + entry.Original)
	r.line(r.theme.Result.Render(verb) + " " + entry.Result)
}

// Entries prints history records oldest first.
func (r *Renderer) Entries(entries []domain.LogEntry) {
	for _, e := range entries {
		r.line(r.theme.Decode.Render(fmt.Sprintf("[%s] %s (ROT%d)", e.Timestamp.Format(domain.LogTimestampFormat), e.Operation, e.Shift)))
		r.line(r.theme.Label.Render("Original:") + " " + e.Original)
		r.line(r.theme.Success.Render("Result:") + "   " + e.Result)
		r.line("")
	}
}

func (r *Renderer) Success(msg string) {
	r.line(r.theme.Success.Render("✓ " + msg))
}

func (r *Renderer) Error(msg string) {
	r.line(r.theme.Error.Render("Error: " + msg))
}

func (r *Renderer) Warning(msg string) {
	r.line(r.theme.Warning.Render(msg))
}

func (r *Renderer) Info(msg string) {
	r.line(r.theme.Muted.Render(msg))
}

// Farewell prints the exit message; interrupted selects the Ctrl+C wording.
func (r *Renderer) Farewell(interrupted bool) {
	r.line("")
	if interrupted {
		r.line(r.theme.Warning.Render("Program interrupted by user."))
	} else {
		r.line(r.theme.Warning.Render("Thanks for using ROT Cipher Tool!"))
	}
	r.line(r.theme.Decode.Render("Goodbye!"))
}
