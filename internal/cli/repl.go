// Package cli provides an interactive shell for testing and debugging the
// swipe-trace prediction engine.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/cheynewallace/tabby"

	"github.com/kaelnor/swypath/pkg/predictor"
)

var wordStyle = lipgloss.NewStyle().Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

// Repl reads swipe traces from stdin and prints ranked predictions.
type Repl struct {
	predictor    *predictor.Predictor
	suggestLimit int
	requestCount int
}

// NewRepl builds a Repl around an already-constructed Predictor.
func NewRepl(p *predictor.Predictor, limit int) *Repl {
	return &Repl{predictor: p, suggestLimit: limit}
}

// Start begins the read-trace-print loop. It returns on stdin EOF.
func (r *Repl) Start() error {
	log.Print("swypath CLI [beta]")
	log.Print("type a swipe trace and press Enter to see predictions (Ctrl+C to exit):")

	reader := bufio.NewReader(os.Stdin)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		trace := strings.TrimSpace(line)
		if trace == "" {
			continue
		}
		r.handleTrace(trace)
	}
}

func (r *Repl) handleTrace(trace string) {
	r.requestCount++

	start := time.Now()
	predictions := r.predictor.Predict(trace, r.suggestLimit)
	elapsed := time.Since(start)

	log.Debugf("took %v for trace %q", elapsed, trace)

	if len(predictions) == 0 {
		log.Warnf("no predictions for trace: %q", trace)
		return
	}

	table := tabby.New()
	table.AddHeader("Rank", "Word", "Score", "Freq")
	for i, p := range predictions {
		table.AddLine(i+1, wordStyle.Render(p.Word), fmt.Sprintf("%.3f", p.Score), fmt.Sprintf("%.2f", p.Freq))
	}
	table.Print()
}
