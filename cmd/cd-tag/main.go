package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/binaryphile/cdtoc/internal/cdda"
	"github.com/binaryphile/cdtoc/internal/cdtext"
	"github.com/binaryphile/cdtoc/internal/encode"
	"github.com/binaryphile/cdtoc/internal/logging"
)

const appName = "cd-tag"

// Files written by cd-info -o.
const (
	fullTOCFile = "fulltoc.bin"
	cdTextFile  = "cdtext.bin"
)

type config struct {
	dir     string
	info    string // directory holding cdtext.bin and fulltoc.bin
	block   int    // -1 selects English, then the first block
	rename  bool
	dryRun  bool
	verbose bool
}

func main() {
	var cfg config

	flag.StringVar(&cfg.info, "i", "", "Directory with cdtext.bin and fulltoc.bin (default: <dir>)")
	flag.StringVar(&cfg.info, "info", "", "Directory with cdtext.bin and fulltoc.bin (default: <dir>)")

	flag.IntVar(&cfg.block, "b", -1, "CD-TEXT block number (default: English block, else the first)")
	flag.IntVar(&cfg.block, "block", -1, "CD-TEXT block number (default: English block, else the first)")

	flag.BoolVar(&cfg.rename, "rename", false, "Rename files to Performer-Album-NN-Title.mp3")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "Show what would be done")

	flag.BoolVar(&cfg.verbose, "v", false, "Verbose output")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <dir>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Tag MP3 files from the disc's CD-TEXT.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	cfg.dir = flag.Arg(0)

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, stdout, stderr io.Writer) error {
	verbosity := logging.LevelInfo
	if cfg.verbose {
		verbosity = logging.LevelDebug
	}
	log := logging.NewWriter(stderr, verbosity).WithName(appName)

	if cfg.info == "" {
		cfg.info = cfg.dir
	}

	files, err := findMP3Files(cfg.dir)
	if err != nil {
		return errors.Wrap(err, "find MP3 files")
	}
	if len(files) == 0 {
		return errors.Errorf("no MP3 files found in %s", cfg.dir)
	}

	block, err := loadBlock(cfg, log)
	if err != nil {
		return err
	}

	tracks, err := audioTracks(cfg.info, block, len(files), log)
	if err != nil {
		return err
	}
	if len(tracks) != len(files) {
		fmt.Fprintf(stderr, "Warning: Track count mismatch (%d MP3 files, %d audio tracks)\n",
			len(files), len(tracks))
	}

	if cfg.dryRun {
		fmt.Fprintln(stdout, "[DRY RUN] Would tag:")
	}

	for i, path := range files {
		if i >= len(tracks) {
			break
		}
		meta := encode.TrackMetaFromCDText(block, tracks[i], len(tracks))
		tags := encode.BuildTags(meta)

		target := path
		if cfg.rename {
			target = filepath.Join(filepath.Dir(path), encode.TrackFilename(meta))
		}

		if cfg.dryRun {
			fmt.Fprintf(stdout, "  %s -> %02d. %s", filepath.Base(path), meta.TrackNum, meta.Title)
			if target != path {
				fmt.Fprintf(stdout, " (%s)", filepath.Base(target))
			}
			fmt.Fprintln(stdout)
			continue
		}

		fmt.Fprintf(stdout, "  %02d. %s... ", meta.TrackNum, meta.Title)
		if err := tags.Apply(path); err != nil {
			fmt.Fprintln(stdout, "ERROR")
			return errors.Wrapf(err, "tag %s", path)
		}
		if target != path {
			if err := os.Rename(path, target); err != nil {
				fmt.Fprintln(stdout, "ERROR")
				return errors.Wrapf(err, "rename %s", path)
			}
		}
		fmt.Fprintln(stdout, "OK")
	}

	return nil
}

func loadBlock(cfg config, log logr.Logger) (*cdtext.Block, error) {
	data, err := os.ReadFile(filepath.Join(cfg.info, cdTextFile))
	if err != nil {
		return nil, errors.Wrap(err, "read CD-TEXT")
	}

	text, err := cdtext.Decode(data, cdtext.WithLogger(log))
	if err != nil {
		return nil, errors.Wrap(err, "decode CD-TEXT")
	}
	if len(text.Blocks) == 0 {
		return nil, errors.New("CD-TEXT has no blocks")
	}

	if cfg.block >= 0 {
		b, ok := text.Block(cfg.block)
		if !ok {
			return nil, errors.Errorf("CD-TEXT has no block %d", cfg.block)
		}
		return b, nil
	}
	if b, ok := text.BlockByLanguage(cdtext.LanguageEnglish); ok {
		return b, nil
	}
	return text.Blocks[0], nil
}

// audioTracks returns the track numbers the files map to, in order. The Full
// TOC is preferred since it marks data tracks. Without it the CD-TEXT track
// range is used, and as a last resort the files are numbered from 1.
func audioTracks(dir string, block *cdtext.Block, files int, log logr.Logger) ([]int, error) {
	data, err := os.ReadFile(filepath.Join(dir, fullTOCFile))
	switch {
	case err == nil:
		toc, err := cdda.ParseFullTOC(data, cdda.WithLogger(log))
		if err != nil {
			return nil, errors.Wrap(err, "decode Full TOC")
		}
		var tracks []int
		for _, t := range toc.Tracks {
			if t.IsAudio() {
				tracks = append(tracks, t.Number)
			}
		}
		return tracks, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, errors.Wrap(err, "read Full TOC")
	}

	log.V(logging.LevelDebug).Info("no Full TOC, using CD-TEXT track range")
	first, last, ok := block.TrackRange()
	if !ok {
		first, last = 1, files
	}
	tracks := make([]int, 0, last-first+1)
	for n := first; n <= last; n++ {
		tracks = append(tracks, n)
	}
	return tracks, nil
}

func findMP3Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".mp3") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	// Sort by filename (track01.mp3, track02.mp3, etc.)
	sort.Strings(files)
	return files, nil
}
