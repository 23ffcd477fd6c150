package dictionary

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/kaelnor/swypath/internal/logger"
)

// ErrUnknownLanguage is returned when no embedded asset exists for a
// requested language code.
type ErrUnknownLanguage struct {
	Lang string
}

func (e *ErrUnknownLanguage) Error() string {
	return fmt.Sprintf("dictionary: unknown language %q", e.Lang)
}

// Source resolves a language code to its raw asset bytes, e.g. an
// embed.FS lookup. It reports ok=false for an unsupported code.
type Source func(lang string) (data []byte, ok bool)

// loaded bundles a decoded asset with the length-bucketed index built over
// it, so a language is only ever decoded and indexed once.
type loaded struct {
	asset *Asset
	index *patricia.Trie
}

// Manager lazily decodes and caches one Asset per language code, mirroring
// the teacher's lazy per-chunk loading but generalized to per-language
// granularity: a language is decoded on first use and kept resident for
// the lifetime of the process, since assets are small, read-only tables
// meant to be shared across every query.
type Manager struct {
	mu     sync.RWMutex
	langs  map[string]*loaded
	source Source
	log    *log.Logger
}

// NewManager builds a Manager that resolves language codes through source.
func NewManager(source Source, log *log.Logger) *Manager {
	if log == nil {
		log = logger.Default("dictionary")
	}
	return &Manager{
		langs:  make(map[string]*loaded),
		source: source,
		log:    log,
	}
}

// Get returns the decoded asset and its first-letter/length index for lang,
// loading and indexing it on first request.
func (m *Manager) Get(lang string) (*Asset, *patricia.Trie, error) {
	m.mu.RLock()
	l, ok := m.langs[lang]
	m.mu.RUnlock()
	if ok {
		return l.asset, l.index, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.langs[lang]; ok {
		return l.asset, l.index, nil
	}

	raw, ok := m.source(lang)
	if !ok {
		return nil, nil, &ErrUnknownLanguage{Lang: lang}
	}

	asset, err := Load(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("dictionary: loading %q: %w", lang, err)
	}

	idx := buildIndex(asset)
	l = &loaded{asset: asset, index: idx}
	m.langs[lang] = l
	m.log.Debugf("loaded dictionary %q: %d entries", lang, len(asset.Entries))
	return l.asset, l.index, nil
}

// bucketKey keys the length-bucketed index: first letter plus a
// fixed-width decimal word length (letters, pre-simplification), e.g.
// "a0007" for 7-letter words starting with 'a'. Repurposes the teacher's
// patricia-trie prefix-completion structure as an exact-bucket lookup,
// since our filter needs candidate sets grouped by (first letter, word
// length) rather than by typed-so-far prefix. Word length, not
// post-simplification path length, is used so the index lines up with the
// length-skew filter applied before simplification.
func bucketKey(firstLetter byte, wordLen int) patricia.Prefix {
	return patricia.Prefix(fmt.Sprintf("%c%04d", firstLetter, wordLen))
}

// buildIndex inserts every entry's index into the trie under its bucket
// key, appending to any existing bucket rather than overwriting it.
func buildIndex(asset *Asset) *patricia.Trie {
	trie := patricia.NewTrie()
	for i, e := range asset.Entries {
		if len(e.Word) == 0 {
			continue
		}
		key := bucketKey(e.Word[0], len(e.Word))
		if existing := trie.Get(key); existing != nil {
			bucket := existing.([]int)
			trie.Set(key, append(bucket, i))
			continue
		}
		trie.Insert(key, []int{i})
	}
	return trie
}

// CandidateIndices returns the indices of every entry whose first letter
// matches firstLetter and whose word length (letter count) is exactly
// wordLen. It is an exact-bucket lookup, not a prefix search: callers that
// need a range of admissible lengths call it once per length.
func CandidateIndices(index *patricia.Trie, firstLetter byte, wordLen int) []int {
	item := index.Get(bucketKey(firstLetter, wordLen))
	if item == nil {
		return nil
	}
	return item.([]int)
}
