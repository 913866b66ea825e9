package ecscore

import "fmt"

// EntityID is an opaque encoded integer: a generational handle packing a
// slot index and a version (generation) counter into one value. It is
// always carried as a uint64; for bit-width totals of 32 or less every
// live value also fits in the low 32 bits, so callers targeting a 32-bit
// word can simply truncate.
type EntityID uint64

// CodecKind reports whether a Codec's total bit width fits a 32-bit word
// or needs the full 64 bits.
type CodecKind int

const (
	// Small is a codec whose indexBits+versionBits <= 32.
	Small CodecKind = iota
	// Big is a codec whose indexBits+versionBits > 32.
	Big
)

func (k CodecKind) String() string {
	if k == Small {
		return "Small"
	}
	return "Big"
}

// Bits summarizes a Codec's configuration, as returned by Codec.Bits.
type Bits struct {
	IndexBits   int
	VersionBits int
	TotalBits   int
	Kind        CodecKind
}

// Codec is a pure value codec that packs (index, version) into a single
// EntityID, with a configurable split between index bits (high) and
// version bits (low). A Codec has no mutable state and encode/decode
// never fails at runtime — out-of-range inputs are silently masked
// rather than rejected.
type Codec struct {
	indexBits   int
	versionBits int
	indexMask   uint64
	versionMask uint64
}

// NewCodec builds a Codec for the given bit split. It fails if either
// width is non-positive or their sum exceeds 64 — the only way handle
// construction itself can fail.
func NewCodec(indexBits, versionBits int) (*Codec, error) {
	if indexBits <= 0 || versionBits <= 0 || indexBits+versionBits > 64 {
		return nil, ErrBadBitWidth
	}
	return &Codec{
		indexBits:   indexBits,
		versionBits: versionBits,
		indexMask:   mask64(indexBits),
		versionMask: mask64(versionBits),
	}, nil
}

// SmallCodec returns the pre-built 12-bit-index/4-bit-version codec.
func SmallCodec() *Codec {
	c, err := NewCodec(12, 4)
	if err != nil {
		panic(err)
	}
	return c
}

// MediumCodec returns the pre-built 20-bit-index/12-bit-version codec.
func MediumCodec() *Codec {
	c, err := NewCodec(20, 12)
	if err != nil {
		panic(err)
	}
	return c
}

// LargeCodec returns the pre-built 32-bit-index/32-bit-version codec.
func LargeCodec() *Codec {
	c, err := NewCodec(32, 32)
	if err != nil {
		panic(err)
	}
	return c
}

func mask64(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

// Make packs index and version into an EntityID, masking each field to its
// configured width.
func (c *Codec) Make(index, version uint64) EntityID {
	return EntityID(((index & c.indexMask) << uint(c.versionBits)) | (version & c.versionMask))
}

// Index extracts the index field from an encoded EntityID.
func (c *Codec) Index(e EntityID) uint64 {
	return (uint64(e) >> uint(c.versionBits)) & c.indexMask
}

// Version extracts the version field from an encoded EntityID.
func (c *Codec) Version(e EntityID) uint64 {
	return uint64(e) & c.versionMask
}

// Equals reports whether two EntityIDs carry the same encoded value.
func (c *Codec) Equals(a, b EntityID) bool {
	return a == b
}

// InvalidIndex returns the sentinel index value reserved for "no slot":
// (1 << indexBits) - 1, which this codec never hands out as a live slot
// index.
func (c *Codec) InvalidIndex() uint64 {
	return c.indexMask
}

// MaxVersion returns the largest version value this codec can encode.
func (c *Codec) MaxVersion() uint64 {
	return c.versionMask
}

// Bits reports the codec's configuration.
func (c *Codec) Bits() Bits {
	total := c.indexBits + c.versionBits
	kind := Small
	if total > 32 {
		kind = Big
	}
	return Bits{IndexBits: c.indexBits, VersionBits: c.versionBits, TotalBits: total, Kind: kind}
}

func (c *Codec) String() string {
	b := c.Bits()
	return fmt.Sprintf("Codec(index=%d,version=%d,kind=%s)", b.IndexBits, b.VersionBits, b.Kind)
}

// tombstone is the sentinel stored in a sparse cell to mark explicit
// absence. It is never a valid dense index.
const tombstone int32 = -1
