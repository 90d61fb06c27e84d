package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/gousb"
	"github.com/pkg/errors"

	"github.com/binaryphile/cdtoc/internal/cdda"
	"github.com/binaryphile/cdtoc/internal/cdtext"
	"github.com/binaryphile/cdtoc/internal/logging"
	"github.com/binaryphile/cdtoc/internal/musicbrainz"
	"github.com/binaryphile/cdtoc/internal/scsi"
)

const (
	appName    = "cd-info"
	appVersion = "1.0"
	appURL     = "https://github.com/binaryphile/cdtoc"
)

// Dump file names, shared with cd-tag.
const (
	fullTOCFile = "fulltoc.bin"
	cdTextFile  = "cdtext.bin"
	discFile    = "disc.json"
)

type config struct {
	tocFile    string
	cdTextFile string
	vendorID   gousb.ID
	productID  gousb.ID
	output     string
	lookup     bool
	verbose    bool
}

func main() {
	var cfg config
	var vendorID, productID string

	flag.StringVar(&cfg.tocFile, "toc-file", "", "Decode a saved Full TOC instead of reading a drive")
	flag.StringVar(&cfg.cdTextFile, "cdtext-file", "", "Decode a saved CD-TEXT buffer (with -toc-file)")

	flag.StringVar(&vendorID, "vendor-id", "", "USB vendor ID (hex, e.g., 0x0e8d)")
	flag.StringVar(&productID, "product-id", "", "USB product ID (hex, e.g., 0x1887)")

	flag.StringVar(&cfg.output, "o", "", "Dump directory for fulltoc.bin, cdtext.bin and disc.json")
	flag.StringVar(&cfg.output, "output", "", "Dump directory for fulltoc.bin, cdtext.bin and disc.json")

	flag.BoolVar(&cfg.lookup, "l", false, "Look up the disc on MusicBrainz")
	flag.BoolVar(&cfg.lookup, "lookup", false, "Look up the disc on MusicBrainz")

	flag.BoolVar(&cfg.verbose, "v", false, "Verbose output")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show the Full TOC, disc IDs and CD-TEXT of a disc.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	var err error
	if cfg.vendorID, err = parseUSBID(vendorID); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid vendor ID: %s\n", vendorID)
		os.Exit(1)
	}
	if cfg.productID, err = parseUSBID(productID); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid product ID: %s\n", productID)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseUSBID(s string) (gousb.ID, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	if err != nil {
		return 0, err
	}
	return gousb.ID(v), nil
}

func newLogger(w io.Writer, verbose bool) logr.Logger {
	verbosity := logging.LevelInfo
	if verbose {
		verbosity = logging.LevelDebug
	}
	return logging.NewWriter(w, verbosity).WithName(appName)
}

// disc holds the raw buffers read from a drive or from files.
type disc struct {
	fullTOC []byte
	cdText  []byte // nil when the disc has none
}

func run(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
	log := newLogger(stderr, cfg.verbose)

	var raw disc
	var err error
	if cfg.tocFile != "" {
		raw, err = readFiles(cfg)
	} else {
		raw, err = readDrive(ctx, cfg, log, stdout)
	}
	if err != nil {
		return err
	}

	toc, err := cdda.ParseFullTOC(raw.fullTOC, cdda.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "decode Full TOC")
	}

	var text *cdtext.CDText
	if raw.cdText != nil {
		text, err = cdtext.Decode(raw.cdText, cdtext.WithLogger(log))
		if err != nil {
			return errors.Wrap(err, "decode CD-TEXT")
		}
	}

	printTOC(stdout, toc)
	printIDs(stdout, toc)
	if text != nil {
		printCDText(stdout, text)
	} else {
		fmt.Fprintln(stdout, "\nNo CD-TEXT")
	}

	if cfg.output != "" {
		if err := dump(cfg.output, raw, toc, text); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nSaved to: %s\n", cfg.output)
	}

	if cfg.lookup {
		return lookup(ctx, stdout, toc)
	}
	return nil
}

func readFiles(cfg config) (disc, error) {
	var raw disc
	var err error

	raw.fullTOC, err = os.ReadFile(cfg.tocFile)
	if err != nil {
		return disc{}, errors.Wrap(err, "read Full TOC")
	}

	if cfg.cdTextFile != "" {
		raw.cdText, err = os.ReadFile(cfg.cdTextFile)
		if err != nil {
			return disc{}, errors.Wrap(err, "read CD-TEXT")
		}
	}
	return raw, nil
}

func readDrive(ctx context.Context, cfg config, log logr.Logger, stdout io.Writer) (disc, error) {
	dev, err := scsi.OpenDevice(cfg.vendorID, cfg.productID, scsi.WithLogger(log))
	if err != nil {
		return disc{}, errors.Wrap(err, "open drive (is the USB CD drive shared with Linux?)")
	}
	defer dev.Close()

	info, err := dev.Inquiry(ctx)
	if err != nil {
		return disc{}, err
	}
	fmt.Fprintf(stdout, "Device: %s %s (rev %s)\n", info.Vendor, info.Product, info.Revision)

	if !dev.TestUnitReady(ctx) {
		return disc{}, errors.New("no disc in drive or drive not ready")
	}

	var raw disc
	raw.fullTOC, err = dev.ReadFullTOC(ctx)
	if err != nil {
		return disc{}, err
	}

	if cfg.verbose {
		if simple, err := dev.ReadSimpleTOC(ctx); err == nil {
			if toc, err := cdda.ParseTOC(simple); err == nil {
				log.V(logging.LevelDebug).Info("simple TOC", "first", toc.FirstTrack,
					"last", toc.LastTrack, "leadout", toc.Leadout)
			}
		}
	}

	raw.cdText, err = dev.ReadCDText(ctx)
	switch {
	case errors.Is(err, scsi.ErrNoCDText):
		raw.cdText = nil
	case errors.Is(err, scsi.ErrCDTextNotSupported):
		log.Info("drive cannot read CD-TEXT")
		raw.cdText = nil
	case err != nil:
		return disc{}, err
	}

	return raw, nil
}

func printTOC(w io.Writer, toc *cdda.FullTOC) {
	fmt.Fprintf(w, "\nSessions:\n")
	for _, s := range toc.Sessions {
		fmt.Fprintf(w, "  %d: tracks %d-%d, lead-out %s, disc type 0x%02x\n",
			s.Number, s.FirstTrack, s.LastTrack, s.Leadout, s.DiscType)
	}

	fmt.Fprintf(w, "\nTracks:\n")
	fmt.Fprintf(w, "%6s %8s %6s %9s %8s %8s %9s\n", "Track", "Session", "Type", "Start", "LBA", "Length", "Duration")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, t := range toc.Tracks {
		trackType := "audio"
		if t.IsData() {
			trackType = "data"
		}
		duration := float64(t.Length()) / cdda.FramesPerSecond
		fmt.Fprintf(w, "%6d %8d %6s %9s %8d %8d %8.1fs\n",
			t.Number, t.Session, trackType, t.Address, t.Address.LBA(), t.Length(), duration)
	}
}

func printIDs(w io.Writer, toc *cdda.FullTOC) {
	fmt.Fprintf(w, "\nCDDB ID:        %08x\n", cdda.CDDBID(toc))
	fmt.Fprintf(w, "MusicBrainz ID: %s\n", cdda.MusicBrainzID(toc))
}

func printCDText(w io.Writer, text *cdtext.CDText) {
	for _, b := range text.Blocks {
		lang, ok := b.LanguageName()
		if !ok {
			lang = fmt.Sprintf("language 0x%02x", b.Language)
		}
		fmt.Fprintf(w, "\nCD-TEXT block %d (%s, %s):\n", b.Number, lang, b.Encoding)

		if s, ok := b.AlbumTitle(); ok {
			fmt.Fprintf(w, "  Album:     %s\n", s)
		}
		if s, ok := b.Performer(0, false); ok {
			fmt.Fprintf(w, "  Performer: %s\n", s)
		}
		if s, ok := b.Genre(0, false); ok {
			fmt.Fprintf(w, "  Genre:     %s\n", s)
		}
		if s, ok := b.DiscID(0, false); ok {
			fmt.Fprintf(w, "  Disc ID:   %s\n", s)
		}
		if s, ok := b.UPC(); ok {
			fmt.Fprintf(w, "  UPC:       %s\n", s)
		}

		first, last, ok := b.TrackRange()
		if !ok {
			continue
		}
		for track := first; track <= last; track++ {
			title, _ := b.TrackTitle(track, false)
			fmt.Fprintf(w, "  %2d. %s", track, title)
			if p, ok := b.Performer(track, false); ok {
				fmt.Fprintf(w, " / %s", p)
			}
			if isrc, ok := b.ISRC(track); ok {
				fmt.Fprintf(w, " [%s]", isrc)
			}
			fmt.Fprintln(w)
		}
	}

	for _, warning := range text.Warnings {
		fmt.Fprintf(w, "Warning: %v\n", warning)
	}
}

type jsonTrack struct {
	Number  int    `json:"number"`
	Session int    `json:"session"`
	Type    string `json:"type"`
	Start   string `json:"start"`
	LBA     int    `json:"lba"`
	Length  int    `json:"length"`
	Title   string `json:"title,omitempty"`
	Artist  string `json:"artist,omitempty"`
	ISRC    string `json:"isrc,omitempty"`
}

type jsonDisc struct {
	CDDBID        string      `json:"cddb_id"`
	MusicBrainzID string      `json:"musicbrainz_id"`
	Sessions      int         `json:"sessions"`
	LeadoutLBA    int         `json:"leadout_lba"`
	Album         string      `json:"album,omitempty"`
	Artist        string      `json:"artist,omitempty"`
	Tracks        []jsonTrack `json:"tracks"`
}

// discJSON summarizes the disc. Text comes from the English block when there
// is one, otherwise from the first block.
func discJSON(toc *cdda.FullTOC, text *cdtext.CDText) ([]byte, error) {
	j := jsonDisc{
		CDDBID:        fmt.Sprintf("%08x", cdda.CDDBID(toc)),
		MusicBrainzID: cdda.MusicBrainzID(toc),
		Sessions:      len(toc.Sessions),
		LeadoutLBA:    toc.LastSession().Leadout.LBA(),
	}

	b := preferredBlock(text)
	if b != nil {
		j.Album, _ = b.AlbumTitle()
		j.Artist, _ = b.Performer(0, false)
	}

	for _, t := range toc.Tracks {
		jt := jsonTrack{
			Number:  t.Number,
			Session: t.Session,
			Type:    "audio",
			Start:   t.Address.String(),
			LBA:     t.Address.LBA(),
			Length:  t.Length(),
		}
		if t.IsData() {
			jt.Type = "data"
		}
		if b != nil {
			jt.Title, _ = b.TrackTitle(t.Number, false)
			jt.Artist, _ = b.Performer(t.Number, false)
			jt.ISRC, _ = b.ISRC(t.Number)
		}
		j.Tracks = append(j.Tracks, jt)
	}

	return json.MarshalIndent(j, "", "  ")
}

func preferredBlock(text *cdtext.CDText) *cdtext.Block {
	if text == nil || len(text.Blocks) == 0 {
		return nil
	}
	if b, ok := text.BlockByLanguage(cdtext.LanguageEnglish); ok {
		return b
	}
	return text.Blocks[0]
}

func dump(dir string, raw disc, toc *cdda.FullTOC, text *cdtext.CDText) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	if err := os.WriteFile(filepath.Join(dir, fullTOCFile), raw.fullTOC, 0644); err != nil {
		return errors.Wrap(err, "save Full TOC")
	}

	if raw.cdText != nil {
		if err := os.WriteFile(filepath.Join(dir, cdTextFile), raw.cdText, 0644); err != nil {
			return errors.Wrap(err, "save CD-TEXT")
		}
	}

	data, err := discJSON(toc, text)
	if err != nil {
		return errors.Wrap(err, "encode disc summary")
	}
	if err := os.WriteFile(filepath.Join(dir, discFile), append(data, '\n'), 0644); err != nil {
		return errors.Wrap(err, "save disc summary")
	}
	return nil
}

func lookup(ctx context.Context, w io.Writer, toc *cdda.FullTOC) error {
	id := cdda.MusicBrainzID(toc)

	client := musicbrainz.NewClient(appName, appVersion, appURL)
	defer client.Close()

	fmt.Fprintln(w, "\nLooking up on MusicBrainz...")
	releases, err := client.LookupByDiscID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "MusicBrainz lookup")
	}
	if len(releases) == 0 {
		fmt.Fprintln(w, "No releases found")
		return nil
	}

	audio := 0
	for _, t := range toc.Tracks {
		if t.IsAudio() {
			audio++
		}
	}

	releases = musicbrainz.SortReleasesByTrackMatch(releases, audio)
	fmt.Fprintf(w, "Found %d releases:\n", len(releases))
	for i, r := range releases {
		fmt.Fprintf(w, "  %d. %s - %s (%d, %s, %d tracks) %s\n",
			i+1, r.Artist, r.Title, r.Year, r.Country, r.TrackCount, r.MBID)
	}
	return nil
}
