package source

type (
	// FileID uniquely identifies a buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a buffer was obtained.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (editor field, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single text buffer.
// A buffer is usually a short note/task input, but the same type backs
// on-disk note files checked from the CLI.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
