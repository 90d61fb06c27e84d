package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"

	"github.com/binaryphile/cdtoc/internal/cdtext"
)

// TrackMeta contains metadata for a track to be tagged
type TrackMeta struct {
	Artist      string
	AlbumArtist string // Set when the disc performer differs from the track's
	Album       string
	Title       string
	TrackNum    int
	TrackTotal  int
	Composer    string
	Lyricist    string // CD-TEXT songwriter
	Genre       string
	ISRC        string
	Comment     string // CD-TEXT message
	Year        int
	Compilation bool
}

// TrackMetaFromCDText collects the metadata for one track from a CD-TEXT
// block. Performer, composer, songwriter and genre fall back to the
// album-wide values; title and ISRC do not.
func TrackMetaFromCDText(b *cdtext.Block, track, total int) TrackMeta {
	meta := TrackMeta{
		TrackNum:   track,
		TrackTotal: total,
	}

	meta.Album, _ = b.AlbumTitle()
	meta.Title, _ = b.TrackTitle(track, false)
	meta.Artist, _ = b.Performer(track, true)
	meta.Composer, _ = b.Composer(track, true)
	meta.Lyricist, _ = b.SongWriter(track, true)
	meta.Genre, _ = b.Genre(track, true)
	meta.ISRC, _ = b.ISRC(track)
	meta.Comment, _ = b.Message(track, false)

	if albumArtist, ok := b.Performer(0, false); ok && albumArtist != meta.Artist {
		meta.AlbumArtist = albumArtist
		meta.Compilation = isVariousArtists(albumArtist)
	}

	return meta
}

func isVariousArtists(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == "various artists" || name == "various"
}

// TagSet contains the ID3 tags to be written
type TagSet struct {
	Artist      string
	AlbumArtist string
	Album       string
	Title       string
	Track       string // N/Total
	Composer    string
	Lyricist    string
	Genre       string
	ISRC        string
	Comment     string
	Year        string
	Compilation bool
}

// BuildTags creates a TagSet from track metadata.
// This is a pure function: TrackMeta → TagSet
// No I/O is performed - use Apply() to write tags to a file.
func BuildTags(meta TrackMeta) TagSet {
	tags := TagSet{
		Artist:      meta.Artist,
		AlbumArtist: meta.AlbumArtist,
		Album:       meta.Album,
		Title:       meta.Title,
		Composer:    meta.Composer,
		Lyricist:    meta.Lyricist,
		Genre:       meta.Genre,
		ISRC:        meta.ISRC,
		Comment:     meta.Comment,
		Compilation: meta.Compilation,
	}

	switch {
	case meta.TrackTotal > 0:
		tags.Track = fmt.Sprintf("%d/%d", meta.TrackNum, meta.TrackTotal)
	case meta.TrackNum > 0:
		tags.Track = strconv.Itoa(meta.TrackNum)
	}

	if meta.Year > 0 {
		tags.Year = strconv.Itoa(meta.Year)
	}

	return tags
}

// Frames returns the text frames to write, keyed by ID3v2.4 frame id.
// Empty values are left out.
func (t TagSet) Frames() map[string]string {
	frames := make(map[string]string)
	add := func(id, value string) {
		if value != "" {
			frames[id] = value
		}
	}

	add("TIT2", t.Title)
	add("TPE1", t.Artist)
	add("TPE2", t.AlbumArtist)
	add("TALB", t.Album)
	add("TRCK", t.Track)
	add("TCOM", t.Composer)
	add("TEXT", t.Lyricist)
	add("TCON", t.Genre)
	add("TSRC", t.ISRC)
	add("TDRC", t.Year)
	if t.Compilation {
		frames["TCMP"] = "1"
	}

	return frames
}

// Apply writes the tags to an MP3 file, replacing any existing tag.
// This is boundary code - performs file I/O.
func (t TagSet) Apply(filepath string) error {
	tag, err := id3v2.Open(filepath, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetVersion(4)

	for id, value := range t.Frames() {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}

	if t.Comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding: id3v2.EncodingUTF8,
			Language: "eng",
			Text:     t.Comment,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}
