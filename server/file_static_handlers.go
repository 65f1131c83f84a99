package server

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

//go:embed static/*
var staticFiles embed.FS

// asset is an embedded stylesheet with its content hash
type asset struct {
	data        []byte
	contentType string
	etag        string
}

// loadAssets reads every embedded file once, keyed by its path under static/
func loadAssets() (map[string]*asset, error) {
	root, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, err
	}
	assets := make(map[string]*asset)
	err = fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, name)
		if err != nil {
			return fmt.Errorf("asset %s: %w", name, err)
		}
		assets[name] = newAsset(name, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func newAsset(name string, data []byte) *asset {
	ctype := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(ctype, "charset=") {
		ctype += "; charset=utf-8"
	}
	sum := sha256.Sum256(data)
	return &asset{data: data, contentType: ctype, etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
}

// streamAsset writes the asset, answering 304 when the browser already has it
func (s *Server) streamAsset(w http.ResponseWriter, r *http.Request, name string) error {
	a, ok := s.assets[name]
	if !ok {
		return fmt.Errorf("asset %s: %w", name, fs.ErrNotExist)
	}
	w.Header().Set("ETag", a.etag)
	if r.Header.Get("If-None-Match") == a.etag {
		w.WriteHeader(http.StatusNotModified)
		return nil
	}
	w.Header().Set("Content-Type", a.contentType)
	if _, err := w.Write(a.data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
