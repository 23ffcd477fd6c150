package dictionary

import (
	"fmt"
	"sort"

	"github.com/kaelnor/swypath/pkg/keyboard"
	"github.com/kaelnor/swypath/pkg/tracepath"
)

// Entry is one dictionary word: its verbatim spelling, its corpus
// frequency, and its precomputed path on the canonical layout.
type Entry struct {
	Word      string
	Frequency uint32
	Path      tracepath.Path
}

// Asset is the complete, immutable, per-language table of entries. It is
// created at build time, embedded in the binary artifact, decoded once at
// engine construction, and never mutated afterward.
type Asset struct {
	Entries []Entry
}

// Encode serializes entries into the binary layout: header, index records,
// strings blob, paths blob, all little-endian. Entries are sorted by word
// length ascending then frequency descending before encoding, matching the
// ordering the predictor's filter stage expects.
func Encode(entries []Entry) ([]byte, error) {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].Word) != len(ordered[j].Word) {
			return len(ordered[i].Word) < len(ordered[j].Word)
		}
		return ordered[i].Frequency > ordered[j].Frequency
	})

	var stringsBlob []byte
	var pathsBlob []byte
	records := make([]indexRecord, len(ordered))

	indexStart := uint32(headerSize)
	stringsOffset := indexStart + uint32(len(ordered))*indexRecordSize

	for i, e := range ordered {
		if len(e.Word) > 0xFFFF {
			return nil, fmt.Errorf("dictionary: word %q too long to encode", e.Word)
		}
		if len(e.Path) > 0xFFFF {
			return nil, fmt.Errorf("dictionary: path for %q too long to encode", e.Word)
		}
		strOff := stringsOffset + uint32(len(stringsBlob))
		stringsBlob = append(stringsBlob, e.Word...)
		records[i] = indexRecord{
			strOffset: strOff,
			strLen:    uint16(len(e.Word)),
			pathLen:   uint16(len(e.Path)),
			frequency: e.Frequency,
		}
	}

	pathsOffset := stringsOffset + uint32(len(stringsBlob))
	for i, e := range ordered {
		pathOff := pathsOffset + uint32(len(pathsBlob))
		pointBuf := make([]byte, pointSize)
		for _, p := range e.Path {
			encodePoint(pointBuf, p.X, p.Y)
			pathsBlob = append(pathsBlob, pointBuf...)
		}
		records[i].pathOffset = pathOff
	}

	out := make([]byte, 0, int(pathsOffset)+len(pathsBlob))
	h := header{
		version:       CurrentVersion,
		entryCount:    uint32(len(ordered)),
		stringsOffset: stringsOffset,
		pathsOffset:   pathsOffset,
	}
	out = append(out, encodeHeader(h)...)
	for _, r := range records {
		out = append(out, encodeIndexRecord(r)...)
	}
	out = append(out, stringsBlob...)
	out = append(out, pathsBlob...)
	return out, nil
}

// Load validates and decodes an asset from raw bytes. It bounds-checks
// every record against the blob sizes and rejects truncated assets rather
// than reading past the buffer.
func Load(data []byte) (*Asset, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	indexEnd := headerSize + int(h.entryCount)*indexRecordSize
	if indexEnd > len(data) {
		return nil, fmt.Errorf("%w: index records truncated", ErrInvalidAsset)
	}
	if int(h.stringsOffset) > len(data) || int(h.pathsOffset) > len(data) {
		return nil, fmt.Errorf("%w: blob offsets out of range", ErrInvalidAsset)
	}

	entries := make([]Entry, h.entryCount)
	for i := 0; i < int(h.entryCount); i++ {
		rec := decodeIndexRecord(data[headerSize+i*indexRecordSize:])

		strEnd := int(rec.strOffset) + int(rec.strLen)
		if int(rec.strOffset) < int(h.stringsOffset) || strEnd > int(h.pathsOffset) || strEnd > len(data) {
			return nil, fmt.Errorf("%w: string record %d out of range", ErrInvalidAsset, i)
		}
		word := string(data[rec.strOffset:strEnd])

		pathBytes := int(rec.pathLen) * pointSize
		pathEnd := int(rec.pathOffset) + pathBytes
		if int(rec.pathOffset) < int(h.pathsOffset) || pathEnd > len(data) {
			return nil, fmt.Errorf("%w: path record %d out of range", ErrInvalidAsset, i)
		}
		path := make(tracepath.Path, rec.pathLen)
		for p := 0; p < int(rec.pathLen); p++ {
			x, y := decodePoint(data[int(rec.pathOffset)+p*pointSize:])
			path[p] = keyboard.Point{X: x, Y: y}
		}

		entries[i] = Entry{Word: word, Frequency: rec.frequency, Path: path}
	}

	return &Asset{Entries: entries}, nil
}
