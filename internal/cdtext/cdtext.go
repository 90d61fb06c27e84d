// Package cdtext decodes the CD-TEXT data returned by READ TOC/PMA/ATIP
// format 5.
package cdtext

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/pkg/errors"

	"github.com/binaryphile/cdtoc/internal/logging"
)

// CDText is the decoded CD-TEXT of a disc. It is not modified after Decode
// returns.
type CDText struct {
	Blocks   []*Block // sorted by number
	Warnings []error
}

// Block returns the block with the given number.
func (c *CDText) Block(number int) (*Block, bool) {
	for _, b := range c.Blocks {
		if b.Number == number {
			return b, true
		}
	}
	return nil, false
}

// BlockByLanguage returns the first block in the given language.
func (c *CDText) BlockByLanguage(code byte) (*Block, bool) {
	for _, b := range c.Blocks {
		if b.Language == code {
			return b, true
		}
	}
	return nil, false
}

// repeatMarker as a complete string means "same as the previous string".
var repeatMarker = []byte{'\t'}

type stream struct {
	block int
	id    PackID
}

type decoder struct {
	log      *logging.Logger
	blocks   map[int]*Block
	warnings []error

	pending []byte // text carried into the next pack
	stream  stream // owner of pending
	prev    []byte // last finalized string
}

// Decode parses a CD-TEXT buffer.
//
// Layout: u16 length (big-endian, counts bytes after itself), 2 reserved
// bytes, then 18-byte packs. Bytes past the declared length are ignored.
// This is a pure function; every error matches ErrMalformed.
func Decode(buf []byte, opts ...Option) (*CDText, error) {
	o := newOptions(opts)
	d := &decoder{
		log:    logging.New(o.log).WithName("cdtext"),
		blocks: make(map[int]*Block),
	}

	if len(buf) < 4 {
		return nil, malformed("CD-TEXT too short: %d bytes, need at least 4", len(buf))
	}

	length := int(binary.BigEndian.Uint16(buf[0:2]))
	if length < 2 || (length-2)%packSize != 0 {
		return nil, malformed("CD-TEXT length %d is not a whole number of packs", length)
	}
	end := length + 2
	if end > len(buf) {
		return nil, malformed("CD-TEXT length %d exceeds buffer of %d bytes", length, len(buf))
	}

	seq := 0
	for offset := 4; offset < end; offset += packSize {
		if err := d.decodePack(seq, buf[offset:offset+packSize]); err != nil {
			return nil, err
		}
		seq++
	}

	return d.finish()
}

func (d *decoder) decodePack(seq int, raw []byte) error {
	p := parsePack(raw)
	fail := func(err error) error {
		return &PackError{Seq: seq, ID: p.ID, Err: err}
	}

	if !validCRC(raw) {
		return fail(errors.Wrapf(ErrCRC, "stored CRC %#04x", p.CRC))
	}
	if p.Seq != seq {
		return fail(errors.Wrapf(ErrSequence, "pack says %d, expected %d", p.Seq, seq))
	}
	if p.Extension {
		return fail(ErrExtension)
	}
	if p.DoubleByte {
		return fail(errors.Wrap(ErrUnsupported, "double-byte character pack"))
	}

	d.log.Trace("pack", "seq", seq, "id", p.ID, "track", p.Track, "block", p.Block,
		"charpos", p.CharPosition)
	b := d.block(p.Block)

	if p.ID.IsBinary() {
		if p.CharPosition != 0 {
			return fail(errors.Wrapf(ErrCharPosition, "character position %d", p.CharPosition))
		}
		if len(d.pending) > 0 {
			return fail(errors.Wrapf(ErrUnterminatedText, "%q still pending", d.pending))
		}
		d.setField(b, p.ID, p.Track, append([]byte(nil), p.Payload[:]...))
		return nil
	}

	s := stream{block: p.Block, id: p.ID}
	if len(d.pending) > 0 && s != d.stream {
		return fail(errors.Wrapf(ErrUnterminatedText, "%q from %v pack not continued", d.pending, d.stream.id))
	}
	d.stream = s

	// The first string completes at the pack's track. Each further
	// terminated string in the same pack belongs to the following track.
	fragments := bytes.Split(p.Payload[:], []byte{0})
	track := p.Track
	for _, frag := range fragments[:len(fragments)-1] {
		text := append(d.pending, frag...)
		d.pending = nil

		switch {
		case bytes.Equal(text, repeatMarker):
			if d.prev == nil {
				return fail(ErrNoPreviousText)
			}
			text = d.prev
		case len(text) > 0:
			d.prev = text
		}

		if len(text) > 0 {
			d.setField(b, p.ID, track, text)
		}
		track++
	}
	d.pending = append(d.pending, fragments[len(fragments)-1]...)
	return nil
}

func (d *decoder) block(number int) *Block {
	b, ok := d.blocks[number]
	if !ok {
		b = newBlock(number)
		d.blocks[number] = b
	}
	return b
}

func (d *decoder) setField(b *Block, id PackID, track int, data []byte) {
	key := fieldKey{id, track}
	if _, dup := b.fields[key]; dup {
		d.warn(errors.Wrapf(ErrDuplicateField, "block %d, %v, track %d", b.Number, id, track))
	}
	b.fields[key] = &Field{Block: b.Number, ID: id, Track: track, Data: data}
}

func (d *decoder) warn(err error) {
	d.warnings = append(d.warnings, err)
	d.log.Warn(err.Error())
}

func (d *decoder) finish() (*CDText, error) {
	if len(d.pending) > 0 {
		d.warn(errors.Wrapf(ErrUnterminatedText, "%q left at end of data", d.pending))
	}

	numbers := make([]int, 0, len(d.blocks))
	for n := range d.blocks {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	ct := &CDText{}
	for _, n := range numbers {
		b := d.blocks[n]
		if err := d.resolveEncoding(b); err != nil {
			return nil, err
		}
		d.resolveLanguage(b)
		ct.Blocks = append(ct.Blocks, b)
	}
	ct.Warnings = d.warnings

	d.log.Debug("decoded CD-TEXT", "blocks", len(ct.Blocks), "warnings", len(ct.Warnings))
	return ct, nil
}

func (d *decoder) resolveEncoding(b *Block) error {
	f, ok := b.fields[fieldKey{PackSizeInfo, 0}]
	if !ok {
		d.warn(errors.Wrapf(ErrMissingSizeInfo, "block %d has no character code, assuming ASCII", b.Number))
		return nil
	}

	enc := Encoding(f.Data[0])
	switch {
	case enc.DoubleByte():
		return &BlockError{Block: b.Number, Err: errors.Wrapf(ErrUnsupported, "%v text", enc)}
	case !enc.known():
		d.warn(errors.Wrapf(ErrUnknownEncoding, "block %d uses %#02x, assuming ASCII", b.Number, byte(enc)))
		return nil
	}
	b.Encoding = enc
	return nil
}

func (d *decoder) resolveLanguage(b *Block) {
	f, ok := b.fields[fieldKey{PackSizeInfo, 2}]
	if !ok {
		d.warn(errors.Wrapf(ErrMissingSizeInfo, "block %d has no language code", b.Number))
		return
	}

	b.Language = f.Data[4+b.Number]
	if _, ok := LanguageName(b.Language); !ok {
		d.warn(errors.Wrapf(ErrUnknownLanguage, "block %d uses %#02x", b.Number, b.Language))
	}
}
