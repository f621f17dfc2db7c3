package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/screening"
)

// uploadSession is a per-request directory holding uploaded documents.
// Cleanup removes it and everything in it.
type uploadSession struct {
	dir    string
	logger *zap.Logger
}

func (s *Server) newUploadSession() (*uploadSession, error) {
	dir, err := os.MkdirTemp(s.uploadDir, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &uploadSession{dir: dir, logger: s.logger}, nil
}

// Save copies an uploaded file into the session under a generated name.
// The returned File keeps the client's base file name as its identifier.
func (u *uploadSession) Save(header *multipart.FileHeader) (screening.File, error) {
	name := cleanFileName(header.Filename)

	src, err := header.Open()
	if err != nil {
		return screening.File{}, fmt.Errorf("failed to open upload %s: %w", name, err)
	}
	defer func() { _ = src.Close() }()

	path := filepath.Join(u.dir, uuid.NewString()+strings.ToLower(filepath.Ext(name)))
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return screening.File{}, fmt.Errorf("failed to store upload %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return screening.File{}, fmt.Errorf("failed to write upload %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return screening.File{}, fmt.Errorf("failed to write upload %s: %w", name, err)
	}

	return screening.File{Name: name, Path: path}, nil
}

// Cleanup removes the session directory
func (u *uploadSession) Cleanup() {
	if err := os.RemoveAll(u.dir); err != nil {
		u.logger.Warn("failed to remove upload directory", zap.String("dir", u.dir), zap.Error(err))
	}
}

// cleanFileName strips any client-supplied directories from a file name
func cleanFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" {
		return ""
	}
	return base
}
