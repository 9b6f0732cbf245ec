package source

// FileID uniquely identifies a source file within a compilation.
type FileID uint32
