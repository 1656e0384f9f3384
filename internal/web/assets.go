package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const assetCacheControl = "public, max-age=3600"

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

func (s *Server) contentBase() string {
	if s.ContentDir != "" {
		return s.ContentDir
	}
	return "content"
}

// imagePath validates a requested file name and resolves it inside the
// content images directory.
func (s *Server) imagePath(name string) (string, bool) {
	safe := filepath.Clean(name)
	if safe == "" || safe == "." || strings.Contains(safe, "..") ||
		filepath.IsAbs(safe) || strings.ContainsAny(safe, `/\`) {
		return "", false
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(safe))] {
		return "", false
	}

	baseDir := filepath.Join(s.contentBase(), "images")
	resolved := filepath.Join(baseDir, safe)
	rel, err := filepath.Rel(baseDir, resolved)
	if err != nil || strings.Contains(rel, "..") {
		return "", false
	}
	return resolved, true
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	path, ok := s.imagePath(r.PathValue("file"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", assetCacheControl)
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
