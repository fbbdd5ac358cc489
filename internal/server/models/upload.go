package models

// UploadKind selects the remote folder and storage options of an upload.
type UploadKind string

const (
	UploadProfileImage UploadKind = "profile_image"
	UploadResume       UploadKind = "resume"
	UploadScreenshot   UploadKind = "screenshot"
)

// RemoteAsset is a stored object: its public URL and the identifier used to
// delete it.
type RemoteAsset struct {
	URL      string `json:"url"`
	RemoteID string `json:"remoteId"`
}
