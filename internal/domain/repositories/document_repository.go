package repositories

// DocumentRepository reads and rewrites the local index document. The
// update is a single read-modify-write; no partial content is ever
// committed.
type DocumentRepository interface {
	Read() (string, error)
	Write(content string) error
}
