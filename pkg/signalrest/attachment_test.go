package signalrest

import (
	"encoding/base64"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachment_Validate(t *testing.T) {
	tests := []struct {
		name       string
		attachment Attachment
		wantErr    bool
	}{
		{name: "path only", attachment: FileAttachment("/tmp/a.png")},
		{name: "bytes only", attachment: BytesAttachment([]byte("x"))},
		{name: "both", attachment: Attachment{Path: "/tmp/a.png", Bytes: []byte("x")}, wantErr: true},
		{name: "neither", attachment: Attachment{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attachment.validate()
			if tt.wantErr {
				var usage *UsageError
				require.ErrorAs(t, err, &usage)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAttachment_EncodeFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/a.png", []byte("content"), 0o644))

	encoded, err := FileAttachment("/tmp/a.png").encode(fs)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("content")), encoded)
}

func TestAttachment_EncodeFromBytes(t *testing.T) {
	encoded, err := BytesAttachment([]byte("content")).encode(afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("content")), encoded)
}

func TestAttachment_EncodeMissingFile(t *testing.T) {
	_, err := FileAttachment("/missing.png").encode(afero.NewMemMapFs())
	require.Error(t, err)
}
