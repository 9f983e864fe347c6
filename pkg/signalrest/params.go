package signalrest

import (
	"strconv"
)

// paramContext selects the formatting rules for one logical operation. It is
// independent of the literal URL path: /v1/send and /v2/send share
// contextSendMessage.
type paramContext int

const (
	contextNone paramContext = iota
	contextReceive
	contextSendMessage
	contextUpdateProfile
	contextUpdateGroup
	contextUpdateContact
	contextTrustIdentity
)

// formatParams turns a logical operation's named arguments into the
// wire-level payload. Absent (nil) values are dropped, never serialized as
// null. Context-specific rules then rewrite the map in place:
//
//   - contextReceive: booleans become the literal strings "true"/"false";
//     the gateway's query-string parsing does not accept native booleans.
//   - contextSendMessage: the "attachments" slice is replaced by its base64
//     wire form, shaped for the addressed gateway version (see
//     formatAttachments).
//   - contextUpdateProfile, contextUpdateGroup: the "avatar" Attachment is
//     replaced by a "base64_avatar" string.
//   - contextUpdateContact: the caller-facing "contact" field is renamed to
//     the wire field "recipient".
//   - contextTrustIdentity: the "number" field is dropped; the subject
//     number is already embedded in the URL path.
//
// Formatting is pure except for attachment/avatar file reads, which go
// through the client's configured filesystem.
func (c *Client) formatParams(raw map[string]any, pctx paramContext, about *About) (map[string]any, error) {
	wire := make(map[string]any, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		wire[key] = value
	}

	switch pctx {
	case contextReceive:
		for key, value := range wire {
			if b, ok := value.(bool); ok {
				wire[key] = strconv.FormatBool(b)
			}
		}

	case contextSendMessage:
		if err := c.formatAttachments(wire, about); err != nil {
			return nil, err
		}

	case contextUpdateProfile, contextUpdateGroup:
		if err := c.formatAvatar(wire); err != nil {
			return nil, err
		}

	case contextUpdateContact:
		if contact, ok := wire["contact"]; ok {
			wire["recipient"] = contact
			delete(wire, "contact")
		}

	case contextTrustIdentity:
		delete(wire, "number")
	}

	return wire, nil
}

// formatAttachments replaces the "attachments" slice with its base64 wire
// form. Gateways speaking v2 take an ordered "base64_attachments" list:
// byte-backed attachments first, then file-backed ones, matching the order
// the caller supplied within each kind. Legacy v1 gateways take a single
// "base64_attachment" string; the capability gate has already rejected
// multi-attachment requests against them, so at most one slot remains here.
func (c *Client) formatAttachments(wire map[string]any, about *About) error {
	value, ok := wire["attachments"]
	if !ok {
		return nil
	}
	delete(wire, "attachments")
	attachments := value.([]Attachment)

	if about.SupportsVersion("v2") {
		encoded := make([]string, 0, len(attachments))
		for _, attachment := range attachments {
			if attachment.Bytes == nil {
				continue
			}
			blob, err := attachment.encode(c.fs)
			if err != nil {
				return err
			}
			encoded = append(encoded, blob)
		}
		for _, attachment := range attachments {
			if attachment.Bytes != nil {
				continue
			}
			blob, err := attachment.encode(c.fs)
			if err != nil {
				return err
			}
			encoded = append(encoded, blob)
		}
		wire["base64_attachments"] = encoded
		return nil
	}

	if len(attachments) == 0 {
		return nil
	}
	blob, err := attachments[0].encode(c.fs)
	if err != nil {
		return err
	}
	wire["base64_attachment"] = blob
	return nil
}

// formatAvatar replaces the "avatar" Attachment with a "base64_avatar"
// string. An avatar slot carrying both a file path and raw bytes is a usage
// error, surfaced by Attachment validation before any file is read.
func (c *Client) formatAvatar(wire map[string]any) error {
	value, ok := wire["avatar"]
	if !ok {
		return nil
	}
	delete(wire, "avatar")

	avatar := value.(Attachment)
	blob, err := avatar.encode(c.fs)
	if err != nil {
		return err
	}
	wire["base64_avatar"] = blob
	return nil
}
