// Package storage relays uploaded files to an S3-compatible object store and
// removes them again. Objects are addressed by key (<folder>/<name>); the
// key doubles as the remote identifier stored next to a document's URL.
package storage

import (
	"context"
	"io"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

// Remote folders, one per upload kind.
const (
	FolderProfileImages = "portfolio_profile_images"
	FolderResumes       = "portfolio_resumes"
	FolderScreenshots   = "portfolio_screenshots"
)

// File is an upload received from a client. Body is rewound after content
// sniffing, so it must be seekable (multipart.File is).
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

type Store interface {
	Upload(ctx context.Context, f File, kind models.UploadKind) (models.RemoteAsset, error)
	Delete(ctx context.Context, remoteID string) error
	// RemoteIDFromURL maps a public URL back to its key. ok is false for
	// URLs that were not produced by this store.
	RemoteIDFromURL(url string) (remoteID string, ok bool)
}

func folderFor(kind models.UploadKind) string {
	switch kind {
	case models.UploadProfileImage:
		return FolderProfileImages
	case models.UploadResume:
		return FolderResumes
	default:
		return FolderScreenshots
	}
}
