package signalrest

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/afero"
)

// Attachment references binary content to send, supplied either as a file
// path (read in full at send time) or as in-memory bytes. Exactly one of the
// two must be set.
type Attachment struct {
	// Path names a file on the client's filesystem.
	Path string

	// Bytes holds the content directly.
	Bytes []byte
}

// FileAttachment returns an Attachment backed by a file path.
func FileAttachment(path string) Attachment {
	return Attachment{Path: path}
}

// BytesAttachment returns an Attachment backed by in-memory content.
func BytesAttachment(data []byte) Attachment {
	return Attachment{Bytes: data}
}

func (a Attachment) validate() error {
	if a.Path != "" && a.Bytes != nil {
		return usageErrorf("attachment has both a file path (%q) and raw bytes; supply exactly one", a.Path)
	}
	if a.Path == "" && a.Bytes == nil {
		return usageErrorf("attachment has neither a file path nor raw bytes")
	}
	return nil
}

// encode produces the base64 wire form of the attachment. File-backed
// attachments are read in full through fs; the file handle is released
// before encode returns, on every path.
func (a Attachment) encode(fs afero.Fs) (string, error) {
	if err := a.validate(); err != nil {
		return "", err
	}
	if a.Bytes != nil {
		return base64.StdEncoding.EncodeToString(a.Bytes), nil
	}
	data, err := afero.ReadFile(fs, a.Path)
	if err != nil {
		return "", fmt.Errorf("reading attachment %q: %w", a.Path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
