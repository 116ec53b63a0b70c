package assets

import "github.com/spaghettifunk/affine/engine/resources"

type Loader interface {
	Load(path string) (*resources.Document, error)
}

// DocumentLoader reads transform documents from disk.
type DocumentLoader struct{}

func (DocumentLoader) Load(path string) (*resources.Document, error) {
	return resources.LoadDocument(path)
}
