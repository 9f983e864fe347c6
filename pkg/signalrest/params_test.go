package signalrest

import (
	"encoding/base64"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatterClient(t *testing.T, fs afero.Fs) *Client {
	t.Helper()
	client, err := New(&Config{
		BaseURL: "http://localhost:8080",
		Number:  "+4915112345678",
		Fs:      fs,
	})
	require.NoError(t, err)
	return client
}

func TestFormatParams_DropsAbsentValues(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	wire, err := client.formatParams(map[string]any{
		"message": "hi",
		"quote":   nil,
		"group":   nil,
	}, contextNone, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"message": "hi"}, wire)
}

func TestFormatParams_EmptyInputYieldsEmptyOutput(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	wire, err := client.formatParams(map[string]any{"a": nil, "b": nil}, contextNone, nil)
	require.NoError(t, err)
	assert.Empty(t, wire)
}

func TestFormatParams_ReceiveBooleans(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	wire, err := client.formatParams(map[string]any{
		"ignore_attachments": true,
		"ignore_stories":     false,
		"timeout":            5,
	}, contextReceive, nil)
	require.NoError(t, err)

	assert.Equal(t, "true", wire["ignore_attachments"])
	assert.Equal(t, "false", wire["ignore_stories"])
	assert.Equal(t, 5, wire["timeout"], "non-boolean values pass through untouched")

	for key, value := range wire {
		_, isBool := value.(bool)
		assert.False(t, isBool, "native boolean survived to the wire map under %q", key)
	}
}

func TestFormatParams_SendAttachmentsV2(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/first.png", []byte("file-one"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/second.png", []byte("file-two"), 0o644))
	client := newFormatterClient(t, fs)

	about := &About{Versions: []string{"v1", "v2"}}
	wire, err := client.formatParams(map[string]any{
		"message": "hi",
		"attachments": []Attachment{
			FileAttachment("/tmp/first.png"),
			BytesAttachment([]byte("raw-bytes")),
			FileAttachment("/tmp/second.png"),
		},
	}, contextSendMessage, about)
	require.NoError(t, err)

	_, hasSlots := wire["attachments"]
	assert.False(t, hasSlots, "logical attachments must not leak onto the wire")

	// Byte-backed attachments come first, then file-backed ones, each kind
	// in caller order.
	assert.Equal(t, []string{
		base64.StdEncoding.EncodeToString([]byte("raw-bytes")),
		base64.StdEncoding.EncodeToString([]byte("file-one")),
		base64.StdEncoding.EncodeToString([]byte("file-two")),
	}, wire["base64_attachments"])
}

func TestFormatParams_SendAttachmentsV1SingleFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/only.png", []byte("payload"), 0o644))
	client := newFormatterClient(t, fs)

	about := &About{Versions: []string{"v1"}}
	wire, err := client.formatParams(map[string]any{
		"attachments": []Attachment{FileAttachment("/tmp/only.png")},
	}, contextSendMessage, about)
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("payload")), wire["base64_attachment"])
	_, hasPlural := wire["base64_attachments"]
	assert.False(t, hasPlural, "legacy gateways take the singular field")
}

func TestFormatParams_SendAttachmentMissingFile(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	about := &About{Versions: []string{"v1", "v2"}}
	_, err := client.formatParams(map[string]any{
		"attachments": []Attachment{FileAttachment("/does/not/exist")},
	}, contextSendMessage, about)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/does/not/exist")
}

func TestFormatParams_AvatarFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/avatar.jpg", []byte("face"), 0o644))
	client := newFormatterClient(t, fs)

	wire, err := client.formatParams(map[string]any{
		"name":   "alice",
		"avatar": FileAttachment("/tmp/avatar.jpg"),
	}, contextUpdateProfile, nil)
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("face")), wire["base64_avatar"])
	assert.Equal(t, "alice", wire["name"])
	_, hasAvatar := wire["avatar"]
	assert.False(t, hasAvatar)
}

func TestFormatParams_AvatarFromBytes(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	wire, err := client.formatParams(map[string]any{
		"avatar": BytesAttachment([]byte("face")),
	}, contextUpdateGroup, nil)
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("face")), wire["base64_avatar"])
}

func TestFormatParams_AvatarWithBothSourcesIsUsageError(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	_, err := client.formatParams(map[string]any{
		"avatar": Attachment{Path: "/tmp/a.jpg", Bytes: []byte("face")},
	}, contextUpdateProfile, nil)

	var usage *UsageError
	require.ErrorAs(t, err, &usage)
}

func TestFormatParams_ContactRename(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	wire, err := client.formatParams(map[string]any{
		"contact": "+4915187654321",
		"name":    "bob",
	}, contextUpdateContact, nil)
	require.NoError(t, err)

	assert.Equal(t, "+4915187654321", wire["recipient"])
	assert.Equal(t, "bob", wire["name"])
	_, hasContact := wire["contact"]
	assert.False(t, hasContact, "caller-facing field name must not reach the wire")
}

func TestFormatParams_TrustIdentityExcludesNumber(t *testing.T) {
	client := newFormatterClient(t, afero.NewMemMapFs())

	wire, err := client.formatParams(map[string]any{
		"number":                 "+4915187654321",
		"verified_safety_number": "123450987",
	}, contextTrustIdentity, nil)
	require.NoError(t, err)

	_, hasNumber := wire["number"]
	assert.False(t, hasNumber, "subject number is already embedded in the URL path")
	assert.Equal(t, "123450987", wire["verified_safety_number"])
}
