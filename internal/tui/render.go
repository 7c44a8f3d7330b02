package tui

import (
	"fmt"
	"strings"

	"github.com/librescoot/dubstep"
)

// maxDots caps the progress row; longer sequences only show the counter
const maxDots = 24

const helpText = "←/h previous • →/l/space next • 0-9 jump • p play • s pause • q quit"

// frameRenderer draws a frame and signals the program that a new one exists.
// The signal is non-blocking because Render runs under the controller lock.
type frameRenderer struct {
	total  int
	title  func(step int) string
	styles Styles
	frames chan<- struct{}
}

func (r *frameRenderer) Render(p dubstep.Props) string {
	select {
	case r.frames <- struct{}{}:
	default:
	}
	return r.view(p.State)
}

func (r *frameRenderer) view(s dubstep.State) string {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("dubstep"))
	b.WriteString("\n\n")

	counter := fmt.Sprintf("Step %d", s.Step+1)
	if r.total > 0 {
		counter = fmt.Sprintf("Step %d/%d", s.Step+1, r.total)
	}
	b.WriteString(r.styles.Step.Render(counter))
	if s.Animating {
		b.WriteString(" " + r.styles.Animating.Render("✨"))
	}
	b.WriteString("\n")

	if r.title != nil {
		if title := r.title(s.Step); title != "" {
			b.WriteString(r.styles.Title.Render(title))
			b.WriteString("\n")
		}
	}

	if r.total > 0 && r.total <= maxDots {
		b.WriteString(r.dots(s.Step))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.Paused {
		b.WriteString(r.styles.Paused.Render("⏸ paused"))
	} else {
		b.WriteString(r.styles.Playing.Render("▶ playing"))
	}
	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render(helpText))

	return b.String()
}

func (r *frameRenderer) dots(step int) string {
	dots := make([]string, r.total)
	for i := range dots {
		if i == step {
			dots[i] = r.styles.Current.Render("●")
		} else {
			dots[i] = r.styles.Other.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
