package source

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeContent strips a UTF-8 BOM or transcodes UTF-16 (BOM-sniffed) input
// to UTF-8. C#-world sources are frequently saved as UTF-16, so the loader
// handles both transparently.
func decodeContent(content []byte) ([]byte, FileFlags, error) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], FileHadBOM, nil
	}

	if len(content) >= 2 &&
		((content[0] == 0xFF && content[1] == 0xFE) || (content[0] == 0xFE && content[1] == 0xFF)) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, content)
		if err != nil {
			return nil, 0, fmt.Errorf("decode utf-16: %w", err)
		}
		return out, FileHadBOM | FileDecodedUTF16, nil
	}

	return content, 0, nil
}

func normalizePath(p string) string {
	// single form in cross-platform output
	return filepath.ToSlash(filepath.Clean(p))
}
