// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds application services that sit between handlers and
// the store: currently the image upload helper.
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/olegiv/salon-go/internal/util"

	_ "golang.org/x/image/webp" // register WebP decoding
)

// MaxUploadSize is the largest accepted image payload.
const MaxUploadSize = 20 * 1024 * 1024 // 20MB

// Folders images may be uploaded into. Anything else is rejected.
var allowedFolders = map[string]bool{
	"carousel":  true,
	"gallery":   true,
	"instagram": true,
	"services":  true,
	"stylists":  true,
}

// allowedExtensions maps accepted file extensions to their canonical form.
var allowedExtensions = map[string]string{
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".png":  ".png",
	".gif":  ".gif",
	".webp": ".webp",
}

// ObjectStore is the object-storage boundary: write bytes under a path and
// resolve a path to a publicly reachable URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, r io.Reader) error
	PublicURL(objectPath string) string
}

// DiskStore is an ObjectStore rooted at a local directory served under a
// URL prefix (the stand-in for the original's hosted bucket).
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates a DiskStore. baseURL is the public prefix the root
// directory is served from, e.g. "/uploads".
func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes the object, creating parent directories as needed.
func (s *DiskStore) Upload(_ context.Context, objectPath string, r io.Reader) error {
	full := filepath.Join(s.root, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("creating upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return fmt.Errorf("writing upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(full)
		return fmt.Errorf("closing upload: %w", err)
	}
	return nil
}

// PublicURL resolves an object path to its public URL.
func (s *DiskStore) PublicURL(objectPath string) string {
	return s.baseURL + "/" + objectPath
}

// Uploader is the image upload helper. It validates the payload, derives a
// collision-resistant storage path and returns the public URL. No database
// row is touched here: callers persist image_url only after Upload returns.
type Uploader struct {
	store ObjectStore
}

// NewUploader creates an Uploader over the given object store.
func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{store: store}
}

// Upload validates and stores one image under the given logical folder and
// returns its public URL. The path embeds a millisecond timestamp and a
// random suffix so concurrent uploads from multiple admin sessions never
// collide.
func (u *Uploader) Upload(ctx context.Context, folder string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if !allowedFolders[folder] {
		return "", fmt.Errorf("unknown upload folder %q", folder)
	}
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}

	ext, err := canonicalExtension(header.Filename)
	if err != nil {
		return "", err
	}

	// Read fully so the payload can be decode-checked before anything is
	// written to storage.
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	objectPath := buildObjectPath(folder, header.Filename, ext)
	if err := u.store.Upload(ctx, objectPath, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	return u.store.PublicURL(objectPath), nil
}

// canonicalExtension validates a filename's extension against the accepted
// image formats.
func canonicalExtension(filename string) (string, error) {
	ext, ok := allowedExtensions[strings.ToLower(path.Ext(filename))]
	if !ok {
		return "", fmt.Errorf("file type %q is not allowed", path.Ext(filename))
	}
	return ext, nil
}

// buildObjectPath derives the storage path:
// <folder>/<unix-ms>-<uuid8>[-<slug>]<ext>
func buildObjectPath(folder, filename, ext string) string {
	base := util.Slugify(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	suffix := uuid.New().String()[:8]
	if base != "" {
		return fmt.Sprintf("%s/%d-%s-%s%s", folder, time.Now().UnixMilli(), suffix, base, ext)
	}
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), suffix, ext)
}
