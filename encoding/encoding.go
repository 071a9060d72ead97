// Package encoding maps XML encoding names onto the encoders in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from xmlb
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

type entry struct {
	label string
	enc   enc.Encoding
}

var registry = map[string]entry{
	"utf8":        {"UTF-8", unicode.UTF8},
	"utf16":       {"UTF-16", unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
	"utf16le":     {"UTF-16LE", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	"utf16be":     {"UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	"iso88591":    {"ISO-8859-1", charmap.Windows1252},
	"latin1":      {"ISO-8859-1", charmap.Windows1252},
	"iso88592":    {"ISO-8859-2", charmap.ISO8859_2},
	"iso88593":    {"ISO-8859-3", charmap.ISO8859_3},
	"iso88594":    {"ISO-8859-4", charmap.ISO8859_4},
	"iso88595":    {"ISO-8859-5", charmap.ISO8859_5},
	"iso88596":    {"ISO-8859-6", charmap.ISO8859_6},
	"iso88597":    {"ISO-8859-7", charmap.ISO8859_7},
	"iso88598":    {"ISO-8859-8", charmap.ISO8859_8},
	"iso885910":   {"ISO-8859-10", charmap.ISO8859_10},
	"iso885913":   {"ISO-8859-13", charmap.ISO8859_13},
	"iso885914":   {"ISO-8859-14", charmap.ISO8859_14},
	"iso885915":   {"ISO-8859-15", charmap.ISO8859_15},
	"iso885916":   {"ISO-8859-16", charmap.ISO8859_16},
	"eucjp":       {"EUC-JP", japanese.EUCJP},
	"shiftjis":    {"Shift_JIS", japanese.ShiftJIS},
	"cp932":       {"Shift_JIS", japanese.ShiftJIS},
	"iso2022jp":   {"ISO-2022-JP", japanese.ISO2022JP},
	"jis":         {"ISO-2022-JP", japanese.ISO2022JP},
	"euckr":       {"EUC-KR", korean.EUCKR},
	"big5":        {"Big5", traditionalchinese.Big5},
	"gbk":         {"GBK", simplifiedchinese.GBK},
	"gb18030":     {"GB18030", simplifiedchinese.GB18030},
	"hzgb2312":    {"HZ-GB-2312", simplifiedchinese.HZGB2312},
	"koi8r":       {"KOI8-R", charmap.KOI8R},
	"koi8u":       {"KOI8-U", charmap.KOI8U},
	"cp437":       {"IBM437", charmap.CodePage437},
	"cp866":       {"IBM866", charmap.CodePage866},
	"macintosh":   {"macintosh", charmap.Macintosh},
	"windows874":  {"windows-874", charmap.Windows874},
	"windows1250": {"windows-1250", charmap.Windows1250},
	"windows1251": {"windows-1251", charmap.Windows1251},
	"windows1252": {"windows-1252", charmap.Windows1252},
	"windows1253": {"windows-1253", charmap.Windows1253},
	"windows1254": {"windows-1254", charmap.Windows1254},
	"windows1255": {"windows-1255", charmap.Windows1255},
	"windows1256": {"windows-1256", charmap.Windows1256},
	"windows1257": {"windows-1257", charmap.Windows1257},
	"windows1258": {"windows-1258", charmap.Windows1258},
}

func normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

// Load returns the encoding registered under name, nil if the name
// is unknown. Lookup ignores case, dashes and underscores.
func Load(name string) enc.Encoding {
	e, ok := registry[normalize(name)]
	if !ok {
		return nil
	}
	return e.enc
}

// Label returns the canonical name to write into an XML declaration
// for the given encoding name. Unknown names are returned unchanged.
func Label(name string) string {
	e, ok := registry[normalize(name)]
	if !ok {
		return name
	}
	return e.label
}
