package media

import (
	"io/fs"
	"net/http"
	"strings"
)

// PublicHandler serves stored files from root. It is meant to be mounted
// under "/public/" with the prefix stripped. Directory listings and
// in-flight temporary files are reported as not found.
func PublicHandler(root string) http.Handler {
	return http.FileServer(filesOnly{http.Dir(root)})
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	if strings.HasSuffix(name, ".tmp") {
		return nil, fs.ErrNotExist
	}
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
