package ports

// FileCopyPort copies files whose path relative to src matches one of the
// patterns. It returns the destination paths written.
type FileCopyPort interface {
	Copy(patterns []string, src string, dst string, keepPath bool) ([]string, error)
	// CopyFiles copies the listed src-relative files, keeping their paths.
	CopyFiles(files []string, src string, dst string) ([]string, error)
}

// SourceTreePort lists the files of a recipe folder that may be exported.
type SourceTreePort interface {
	ListSources(root string) ([]string, error)
}
