package cdtext

import "fmt"

// PackID identifies the kind of data a pack carries.
type PackID byte

const (
	PackTitle      PackID = 0x80
	PackPerformer  PackID = 0x81
	PackSongWriter PackID = 0x82
	PackComposer   PackID = 0x83
	PackArranger   PackID = 0x84
	PackMessage    PackID = 0x85
	PackDiscID     PackID = 0x86
	PackGenre      PackID = 0x87
	PackTOC        PackID = 0x88
	PackTOC2       PackID = 0x89
	PackClosedInfo PackID = 0x8D
	PackUPC        PackID = 0x8E // UPC/EAN on track 0, ISRC on tracks
	PackSizeInfo   PackID = 0x8F
)

var packNames = map[PackID]string{
	PackTitle:      "Title",
	PackPerformer:  "Performer",
	PackSongWriter: "SongWriter",
	PackComposer:   "Composer",
	PackArranger:   "Arranger",
	PackMessage:    "Message",
	PackDiscID:     "DiscID",
	PackGenre:      "Genre",
	PackTOC:        "TOC",
	PackTOC2:       "TOC2",
	PackClosedInfo: "ClosedInfo",
	PackUPC:        "UPC/ISRC",
	PackSizeInfo:   "SizeInfo",
}

func (id PackID) String() string {
	if name, ok := packNames[id]; ok {
		return name
	}
	return fmt.Sprintf("PackID(%#02x)", byte(id))
}

// IsBinary reports whether packs with this id carry a raw 12-byte payload
// instead of text.
func (id PackID) IsBinary() bool {
	return id == PackTOC || id == PackTOC2 || id == PackSizeInfo
}

// Encoding is the character code declared by a block's size information.
type Encoding byte

const (
	EncodingISO8859_1 Encoding = 0x00
	EncodingASCII     Encoding = 0x01
	EncodingMSJIS     Encoding = 0x80
	EncodingKorean    Encoding = 0x81
	EncodingMandarin  Encoding = 0x82
)

func (e Encoding) String() string {
	switch e {
	case EncodingISO8859_1:
		return "ISO 8859-1"
	case EncodingASCII:
		return "ASCII"
	case EncodingMSJIS:
		return "MS-JIS"
	case EncodingKorean:
		return "Korean"
	case EncodingMandarin:
		return "Mandarin"
	}
	return fmt.Sprintf("Encoding(%#02x)", byte(e))
}

func (e Encoding) known() bool {
	return e == EncodingISO8859_1 || e == EncodingASCII || e.DoubleByte()
}

// DoubleByte reports whether text in this encoding uses two bytes per
// character.
func (e Encoding) DoubleByte() bool {
	return e == EncodingMSJIS || e == EncodingKorean || e == EncodingMandarin
}

// Language codes used by BlockByLanguage. See LanguageName for the full table.
const (
	LanguageUnknown  byte = 0x00
	LanguageEnglish  byte = 0x09
	LanguageJapanese byte = 0x69
)

// languages is indexed by the EBU Tech 3258 language code. Codes
// 0x2C-0x44 are reserved.
var languages = [128]string{
	0x00: "Unknown/Not Applicable",
	0x01: "Albanian",
	0x02: "Breton",
	0x03: "Catalan",
	0x04: "Croatian",
	0x05: "Welsh",
	0x06: "Czech",
	0x07: "Danish",
	0x08: "German",
	0x09: "English",
	0x0A: "Spanish",
	0x0B: "Esperanto",
	0x0C: "Estonian",
	0x0D: "Basque",
	0x0E: "Faroese",
	0x0F: "French",
	0x10: "Frisian",
	0x11: "Irish",
	0x12: "Gaelic",
	0x13: "Galician",
	0x14: "Icelandic",
	0x15: "Italian",
	0x16: "Lappish",
	0x17: "Latin",
	0x18: "Latvian",
	0x19: "Luxembourgian",
	0x1A: "Lithuanian",
	0x1B: "Hungarian",
	0x1C: "Maltese",
	0x1D: "Dutch",
	0x1E: "Norwegian",
	0x1F: "Occitan",
	0x20: "Polish",
	0x21: "Portuguese",
	0x22: "Romanian",
	0x23: "Romansh",
	0x24: "Serbian",
	0x25: "Slovak",
	0x26: "Slovene",
	0x27: "Finnish",
	0x28: "Swedish",
	0x29: "Turkish",
	0x2A: "Flemish",
	0x2B: "Walloon",
	0x45: "Zulu",
	0x46: "Vietnamese",
	0x47: "Uzbek",
	0x48: "Urdu",
	0x49: "Ukrainian",
	0x4A: "Thai",
	0x4B: "Telugu",
	0x4C: "Tatar",
	0x4D: "Tamil",
	0x4E: "Tadzhik",
	0x4F: "Swahili",
	0x50: "Sranan Tongo",
	0x51: "Somali",
	0x52: "Sinhalese",
	0x53: "Shona",
	0x54: "Serbo-Croatian",
	0x55: "Ruthenian",
	0x56: "Russian",
	0x57: "Quechua",
	0x58: "Pushtu",
	0x59: "Punjabi",
	0x5A: "Persian",
	0x5B: "Papiamento",
	0x5C: "Oriya",
	0x5D: "Nepali",
	0x5E: "Ndebele",
	0x5F: "Marathi",
	0x60: "Moldavian",
	0x61: "Malaysian",
	0x62: "Malagasy",
	0x63: "Macedonian",
	0x64: "Laotian",
	0x65: "Korean",
	0x66: "Khmer",
	0x67: "Kazakh",
	0x68: "Kannada",
	0x69: "Japanese",
	0x6A: "Indonesian",
	0x6B: "Hindi",
	0x6C: "Hebrew",
	0x6D: "Hausa",
	0x6E: "Guarani",
	0x6F: "Gujarati",
	0x70: "Greek",
	0x71: "Georgian",
	0x72: "Fulani",
	0x73: "Dari",
	0x74: "Chuvash",
	0x75: "Chinese",
	0x76: "Burmese",
	0x77: "Bulgarian",
	0x78: "Bengali",
	0x79: "Belorussian",
	0x7A: "Bambara",
	0x7B: "Azerbaijani",
	0x7C: "Assamese",
	0x7D: "Armenian",
	0x7E: "Arabic",
	0x7F: "Amharic",
}

// LanguageName returns the name of a CD-TEXT language code. Reserved and
// out-of-range codes report false.
func LanguageName(code byte) (string, bool) {
	if int(code) >= len(languages) || languages[code] == "" {
		return "", false
	}
	return languages[code], true
}
