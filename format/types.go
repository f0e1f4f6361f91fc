package format

type (
	AlphabetType    uint8
	CompressionType uint8
)

const (
	AlphabetRaw          AlphabetType = 0x1 // AlphabetRaw renders 16-bit units as UTF-16 code units.
	AlphabetUTF16        AlphabetType = 0x2 // AlphabetUTF16 renders 15-bit units offset by 32, plus a trailing space.
	AlphabetBase64       AlphabetType = 0x3 // AlphabetBase64 renders 6-bit units with the padded Base64 alphabet.
	AlphabetURIComponent AlphabetType = 0x4 // AlphabetURIComponent renders 6-bit units with the URI-safe alphabet.
	AlphabetBytes        AlphabetType = 0x5 // AlphabetBytes renders raw units as big-endian byte pairs.

	CompressionNone     CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd     CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2       CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4      CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionLZString CompressionType = 0x5 // CompressionLZString represents the LZ string codec in byte-array form.
)

func (a AlphabetType) String() string {
	switch a {
	case AlphabetRaw:
		return "Raw"
	case AlphabetUTF16:
		return "UTF16"
	case AlphabetBase64:
		return "Base64"
	case AlphabetURIComponent:
		return "URIComponent"
	case AlphabetBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// ParseAlphabet maps a case-sensitive short name ("raw", "utf16", "base64",
// "uri", "bytes") to its AlphabetType.
func ParseAlphabet(name string) (AlphabetType, bool) {
	switch name {
	case "raw":
		return AlphabetRaw, true
	case "utf16":
		return AlphabetUTF16, true
	case "base64":
		return AlphabetBase64, true
	case "uri":
		return AlphabetURIComponent, true
	case "bytes":
		return AlphabetBytes, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionLZString:
		return "LZString"
	default:
		return "Unknown"
	}
}
