// Package predictor loads a per-language dictionary asset and runs the
// filter -> score -> rank pipeline against a normalized input trace,
// returning the top-K candidates. A Predictor is pure: predicting twice
// with the same arguments yields identical output, and no query mutates
// the underlying asset.
package predictor

import (
	"math"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/kaelnor/swypath/pkg/dictionary"
	"github.com/kaelnor/swypath/pkg/dtw"
	"github.com/kaelnor/swypath/pkg/keyboard"
	"github.com/kaelnor/swypath/pkg/tracepath"
)

// Config is the small set of tunables the component design allows callers
// to override at construction.
type Config struct {
	PopularityWeight float64 `toml:"popularity_weight"`
	BandDivisor      int     `toml:"band_divisor"`
	FirstCharStrict  bool    `toml:"first_char_strict"`
	LastCharPenalty  float64 `toml:"last_char_penalty"`
	LengthSkewMax    float64 `toml:"length_skew_max"`
}

// DefaultConfig returns the defaults named in the component design.
func DefaultConfig() Config {
	return Config{
		PopularityWeight: 0.15,
		BandDivisor:      4,
		FirstCharStrict:  true,
		LastCharPenalty:  2.0,
		LengthSkewMax:    3.0,
	}
}

// Prediction is one ranked candidate returned to the caller.
type Prediction struct {
	Word  string
	Score float64
	Freq  float64
}

// Predictor holds one language's asset and the config it was constructed
// with. It owns no mutable state beyond its result cache, and the asset it
// references is never mutated after load.
type Predictor struct {
	lang   string
	asset  *dictionary.Asset
	index  *patricia.Trie
	layout *keyboard.Layout
	cfg    Config
	cache  *Cache
}

// New constructs a Predictor for lang, loading its asset through manager.
// An unknown language yields an error; config, if nil, uses DefaultConfig.
func New(manager *dictionary.Manager, lang string, cfg *Config) (*Predictor, error) {
	asset, index, err := manager.Get(lang)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if c.BandDivisor <= 0 {
		c.BandDivisor = 4
	}

	return &Predictor{
		lang:   lang,
		asset:  asset,
		index:  index,
		layout: keyboard.NewQWERTY(),
		cfg:    c,
		cache:  NewCache(256),
	}, nil
}

// Predict normalizes input, builds its trace path, and runs the
// filter->score->rank pipeline, returning at most k predictions sorted
// ascending by score. It never errors: malformed input simply yields an
// empty or trivial result.
func (p *Predictor) Predict(input string, k int) []Prediction {
	norm := normalizeInput(input)

	// §4.6 step 1: fewer than 2 letters after normalization. An empty
	// trace has no word to echo (E2E scenario: empty string -> empty
	// list); a single letter is returned verbatim with score 0.
	switch len(norm) {
	case 0:
		return []Prediction{}
	case 1:
		return []Prediction{{Word: norm, Score: 0, Freq: 0}}
	}

	if k <= 0 {
		return []Prediction{}
	}

	if cached, ok := p.cache.Get(norm, k); ok {
		return cached
	}

	result := p.predictUncached(norm, k)
	p.cache.Put(norm, k, result)
	return result
}

func (p *Predictor) predictUncached(norm string, k int) []Prediction {
	inputPath := tracepath.Build(norm, p.layout)
	firstLetter := norm[0]
	lastLetter := norm[len(norm)-1]
	inputLen := len(norm)

	survivors := newTopK(k)

	visit := func(idx int) {
		e := p.asset.Entries[idx]
		if p.skewRejects(inputLen, len(e.Word)) {
			return
		}
		if p.cfg.FirstCharStrict && (len(e.Word) == 0 || e.Word[0] != firstLetter) {
			return
		}

		penalty := 0.0
		if len(e.Word) == 0 || e.Word[len(e.Word)-1] != lastLetter {
			penalty = p.cfg.LastCharPenalty
		}
		popularityTerm := p.cfg.PopularityWeight * math.Log(1+float64(e.Frequency))
		adjustment := penalty - popularityTerm

		ceiling := math.Inf(1)
		if survivors.Full() {
			ceiling = survivors.WorstCombined() - adjustment
		}

		bandWidth := dtw.Band(len(inputPath), len(e.Path), p.cfg.BandDivisor)
		raw, err := dtw.Distance(inputPath, e.Path, bandWidth, ceiling)
		if err != nil || math.IsInf(raw, 1) {
			return
		}

		combined := raw + adjustment
		survivors.PushCandidate(candidate{
			word:      e.Word,
			combined:  combined,
			frequency: e.Frequency,
		})
	}

	if p.cfg.FirstCharStrict {
		for length := minSkewLen(inputLen, p.cfg.LengthSkewMax); length <= maxSkewLen(inputLen, p.cfg.LengthSkewMax); length++ {
			for _, idx := range dictionary.CandidateIndices(p.index, firstLetter, length) {
				visit(idx)
			}
		}
	} else {
		for idx := range p.asset.Entries {
			visit(idx)
		}
	}

	return survivors.Drain()
}

// skewRejects implements length_skew_max against unsimplified lengths
// (Open Question b): reject when the ratio of the longer to the shorter
// word length exceeds the configured maximum.
func (p *Predictor) skewRejects(a, b int) bool {
	if a == 0 || b == 0 {
		return true
	}
	longer, shorter := float64(a), float64(b)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	return longer/shorter > p.cfg.LengthSkewMax
}

func minSkewLen(n int, skewMax float64) int {
	min := int(math.Ceil(float64(n) / skewMax))
	if min < 1 {
		min = 1
	}
	return min
}

func maxSkewLen(n int, skewMax float64) int {
	return int(math.Floor(float64(n) * skewMax))
}

func normalizeInput(input string) string {
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c-'A'+'a')
		}
	}
	return string(out)
}

// Language reports the ISO code this Predictor was constructed for.
func (p *Predictor) Language() string { return p.lang }
