package dictionary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Magic tags the start of every asset file. Version bumps whenever the
// record layout or cost function changes; loaders reject a mismatch rather
// than silently accepting it.
var Magic = [4]byte{'S', 'W', 'P', 'E'}

const CurrentVersion uint16 = 1

const (
	headerSize      = 4 + 2 + 4 + 4 + 4 // magic + version + count + strOff + pathOff
	indexRecordSize = 4 + 2 + 4 + 2 + 4  // strOffset + strLen + pathOffset + pathLen + frequency
	pointSize       = 4 + 4              // f32 x, f32 y
)

// ErrInvalidAsset covers every structural failure at load time: bad magic,
// unsupported version, or a record whose offsets don't fit inside the
// blobs it claims to index.
var ErrInvalidAsset = errors.New("dictionary: invalid asset")

type header struct {
	version        uint16
	entryCount     uint32
	stringsOffset  uint32
	pathsOffset    uint32
}

func encodeHeader(h header) []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], Magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], h.version)
	binary.LittleEndian.PutUint32(buf[6:10], h.entryCount)
	binary.LittleEndian.PutUint32(buf[10:14], h.stringsOffset)
	binary.LittleEndian.PutUint32(buf[14:18], h.pathsOffset)
	return buf
}

func decodeHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, fmt.Errorf("%w: truncated header (%d bytes)", ErrInvalidAsset, len(buf))
	}
	if [4]byte(buf[0:4]) != Magic {
		return header{}, fmt.Errorf("%w: bad magic", ErrInvalidAsset)
	}
	h := header{
		version:       binary.LittleEndian.Uint16(buf[4:6]),
		entryCount:    binary.LittleEndian.Uint32(buf[6:10]),
		stringsOffset: binary.LittleEndian.Uint32(buf[10:14]),
		pathsOffset:   binary.LittleEndian.Uint32(buf[14:18]),
	}
	if h.version != CurrentVersion {
		return header{}, fmt.Errorf("%w: version %d, want %d", ErrInvalidAsset, h.version, CurrentVersion)
	}
	return h, nil
}

// indexRecord is the fixed 16-byte on-disk shape of one dictionary entry's
// index slot.
type indexRecord struct {
	strOffset  uint32
	strLen     uint16
	pathOffset uint32
	pathLen    uint16
	frequency  uint32
}

func encodeIndexRecord(r indexRecord) []byte {
	buf := make([]byte, indexRecordSize)
	binary.LittleEndian.PutUint32(buf[0:4], r.strOffset)
	binary.LittleEndian.PutUint16(buf[4:6], r.strLen)
	binary.LittleEndian.PutUint32(buf[6:10], r.pathOffset)
	binary.LittleEndian.PutUint16(buf[10:12], r.pathLen)
	binary.LittleEndian.PutUint32(buf[12:16], r.frequency)
	return buf
}

func decodeIndexRecord(buf []byte) indexRecord {
	return indexRecord{
		strOffset:  binary.LittleEndian.Uint32(buf[0:4]),
		strLen:     binary.LittleEndian.Uint16(buf[4:6]),
		pathOffset: binary.LittleEndian.Uint32(buf[6:10]),
		pathLen:    binary.LittleEndian.Uint16(buf[10:12]),
		frequency:  binary.LittleEndian.Uint32(buf[12:16]),
	}
}

func encodePoint(buf []byte, x, y float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(y))
}

func decodePoint(buf []byte) (float32, float32) {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
}
