package cdtext

import (
	"sort"

	"golang.org/x/text/encoding/charmap"
)

// Field is one assembled CD-TEXT item. Data holds the raw 12-byte payload
// for binary packs and the undecoded text, without terminator, otherwise.
type Field struct {
	Block int
	ID    PackID
	Track int
	Data  []byte
}

type fieldKey struct {
	id    PackID
	track int
}

// Block is one language block of the CD-TEXT data. Encoding and Language are
// resolved once decoding finishes.
type Block struct {
	Number   int
	Encoding Encoding
	Language byte

	fields map[fieldKey]*Field
}

func newBlock(number int) *Block {
	return &Block{
		Number:   number,
		Encoding: EncodingASCII,
		Language: LanguageUnknown,
		fields:   make(map[fieldKey]*Field),
	}
}

// Field returns the field with the given pack id and track number.
func (b *Block) Field(id PackID, track int) (Field, bool) {
	f, ok := b.fields[fieldKey{id, track}]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Fields returns all fields ordered by pack id, then track.
func (b *Block) Fields() []Field {
	fields := make([]Field, 0, len(b.fields))
	for _, f := range b.fields {
		fields = append(fields, *f)
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].ID != fields[j].ID {
			return fields[i].ID < fields[j].ID
		}
		return fields[i].Track < fields[j].Track
	})
	return fields
}

// Text returns the decoded text of a field. When fallback is set and the
// track has no entry, the album-wide (track 0) value is returned instead.
func (b *Block) Text(id PackID, track int, fallback bool) (string, bool) {
	if id.IsBinary() {
		return "", false
	}

	f, ok := b.fields[fieldKey{id, track}]
	if !ok && fallback && track != 0 {
		f, ok = b.fields[fieldKey{id, 0}]
	}
	if !ok {
		return "", false
	}
	return b.decode(f.Data), true
}

// decode converts text to UTF-8. Double-byte blocks are rejected by Decode,
// and ASCII is a subset of ISO 8859-1.
func (b *Block) decode(data []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(s)
}

// AlbumTitle returns the disc title.
func (b *Block) AlbumTitle() (string, bool) {
	return b.Text(PackTitle, 0, false)
}

// TrackTitle returns a track's title, or the album title when fallback is set.
func (b *Block) TrackTitle(track int, fallback bool) (string, bool) {
	return b.Text(PackTitle, track, fallback)
}

// Performer returns the performer of a track, or of the disc for track 0.
func (b *Block) Performer(track int, fallback bool) (string, bool) {
	return b.Text(PackPerformer, track, fallback)
}

// SongWriter returns the songwriter (lyricist) of a track.
func (b *Block) SongWriter(track int, fallback bool) (string, bool) {
	return b.Text(PackSongWriter, track, fallback)
}

// Composer returns the composer of a track.
func (b *Block) Composer(track int, fallback bool) (string, bool) {
	return b.Text(PackComposer, track, fallback)
}

// Arranger returns the arranger of a track.
func (b *Block) Arranger(track int, fallback bool) (string, bool) {
	return b.Text(PackArranger, track, fallback)
}

// Message returns the message text of a track.
func (b *Block) Message(track int, fallback bool) (string, bool) {
	return b.Text(PackMessage, track, fallback)
}

// Genre returns the genre text. Its leading genre code bytes are kept.
func (b *Block) Genre(track int, fallback bool) (string, bool) {
	return b.Text(PackGenre, track, fallback)
}

// DiscID returns the publisher's disc identification, usually a catalog number.
func (b *Block) DiscID(track int, fallback bool) (string, bool) {
	return b.Text(PackDiscID, track, fallback)
}

// UPC returns the disc's UPC/EAN catalog number.
func (b *Block) UPC() (string, bool) {
	return b.Text(PackUPC, 0, false)
}

// ISRC returns a track's ISRC. It never falls back to the UPC.
func (b *Block) ISRC(track int) (string, bool) {
	if track == 0 {
		return "", false
	}
	return b.Text(PackUPC, track, false)
}

// TrackRange returns the first and last track numbers from the block's size
// information.
func (b *Block) TrackRange() (first, last int, ok bool) {
	f, ok := b.fields[fieldKey{PackSizeInfo, 0}]
	if !ok {
		return 0, 0, false
	}
	return int(f.Data[1]), int(f.Data[2]), true
}

// LanguageName returns the name of the block's language.
func (b *Block) LanguageName() (string, bool) {
	return LanguageName(b.Language)
}
