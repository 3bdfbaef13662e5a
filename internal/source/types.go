package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a byte order mark was stripped on load.
	FileHadBOM
	// FileDecodedUTF16 indicates the content was transcoded from UTF-16.
	FileDecodedUTF16
)

// File captures metadata and content for a single source file. Content keeps
// line breaks exactly as read: the scanning engine owns CR/LF/CRLF handling,
// so no break normalization happens here.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

// Buffer returns a fresh cursor over the file content. Each caller gets its
// own cursor; the underlying bytes are shared read-only.
func (f *File) Buffer() *Buffer {
	return NewBuffer(f.Content)
}
