package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Group describes one Signal group the account is a member of.
type Group struct {
	ID              string   `json:"id"`
	InternalID      string   `json:"internal_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Members         []string `json:"members"`
	Admins          []string `json:"admins"`
	Blocked         bool     `json:"blocked"`
	PendingInvites  []string `json:"pending_invites"`
	PendingRequests []string `json:"pending_requests"`
	InviteLink      string   `json:"invite_link"`
}

// CreateGroupRequest describes a new group.
type CreateGroupRequest struct {
	Name        string
	Members     []string
	Description string
}

// Validate checks the request before any network call.
func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Members, validation.Required),
	)
}

// UpdateGroupRequest carries the mutable group fields. Nil/empty fields are
// left unchanged on the gateway.
type UpdateGroupRequest struct {
	Name        string
	Description string

	// Avatar replaces the group avatar. Supplying both a file path and
	// raw bytes on the same Attachment is a usage error.
	Avatar *Attachment
}

// CreateGroup creates a group with the given members and returns its id.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", &UsageError{Reason: "create group", Err: err}
	}

	raw := map[string]any{
		"name":    req.Name,
		"members": req.Members,
	}
	if req.Description != "" {
		raw["description"] = req.Description
	}
	wire, err := c.formatParams(raw, contextNone, nil)
	if err != nil {
		return "", err
	}

	body, err := c.do(ctx, operationRequest{
		method:   http.MethodPost,
		path:     "/v1/groups/" + c.number,
		body:     wire,
		expect:   []int{http.StatusOK, http.StatusCreated},
		fallback: "unknown error while creating group",
	})
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", &UnreachableError{Op: "create group", Err: fmt.Errorf("parsing create group response: %w", err)}
	}
	return created.ID, nil
}

// ListGroups returns all groups the account is a member of.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/groups/" + c.number,
		expect:   []int{http.StatusOK},
		fallback: "unknown error while listing groups",
	})
	if err != nil {
		return nil, err
	}

	var groups []Group
	if err := json.Unmarshal(body, &groups); err != nil {
		return nil, &UnreachableError{Op: "list groups", Err: fmt.Errorf("parsing group list: %w", err)}
	}
	return groups, nil
}

// GetGroup returns a single group by id.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Group, error) {
	if groupID == "" {
		return nil, usageErrorf("get group: group id is required")
	}

	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/groups/" + c.number + "/" + groupID,
		expect:   []int{http.StatusOK},
		fallback: "unknown error while fetching group",
	})
	if err != nil {
		return nil, err
	}

	var group Group
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, &UnreachableError{Op: "get group", Err: fmt.Errorf("parsing group: %w", err)}
	}
	return &group, nil
}

// UpdateGroup changes a group's name, description, or avatar.
func (c *Client) UpdateGroup(ctx context.Context, groupID string, req UpdateGroupRequest) error {
	if groupID == "" {
		return usageErrorf("update group: group id is required")
	}

	raw := map[string]any{}
	if req.Name != "" {
		raw["name"] = req.Name
	}
	if req.Description != "" {
		raw["description"] = req.Description
	}
	if req.Avatar != nil {
		raw["avatar"] = *req.Avatar
	}
	wire, err := c.formatParams(raw, contextUpdateGroup, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, operationRequest{
		method:   http.MethodPut,
		path:     "/v1/groups/" + c.number + "/" + groupID,
		body:     wire,
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while updating group",
	})
	return err
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(ctx context.Context, groupID string) error {
	return c.groupAction(ctx, http.MethodDelete, groupID, "", nil,
		"unknown error while deleting group")
}

// JoinGroup joins a group the account was invited to.
func (c *Client) JoinGroup(ctx context.Context, groupID string) error {
	return c.groupAction(ctx, http.MethodPost, groupID, "/join", nil,
		"unknown error while joining group")
}

// QuitGroup leaves a group.
func (c *Client) QuitGroup(ctx context.Context, groupID string) error {
	return c.groupAction(ctx, http.MethodPost, groupID, "/quit", nil,
		"unknown error while quitting group")
}

// BlockGroup blocks a group.
func (c *Client) BlockGroup(ctx context.Context, groupID string) error {
	return c.groupAction(ctx, http.MethodPost, groupID, "/block", nil,
		"unknown error while blocking group")
}

// AddMembers adds members to a group.
func (c *Client) AddMembers(ctx context.Context, groupID string, members []string) error {
	if len(members) == 0 {
		return usageErrorf("add members: no members supplied")
	}
	return c.groupAction(ctx, http.MethodPost, groupID, "/members",
		map[string]any{"members": members},
		"unknown error while adding group members")
}

// RemoveMembers removes members from a group.
func (c *Client) RemoveMembers(ctx context.Context, groupID string, members []string) error {
	if len(members) == 0 {
		return usageErrorf("remove members: no members supplied")
	}
	return c.groupAction(ctx, http.MethodDelete, groupID, "/members",
		map[string]any{"members": members},
		"unknown error while removing group members")
}

// AddAdmins promotes members to group admins.
func (c *Client) AddAdmins(ctx context.Context, groupID string, admins []string) error {
	if len(admins) == 0 {
		return usageErrorf("add admins: no admins supplied")
	}
	return c.groupAction(ctx, http.MethodPost, groupID, "/admins",
		map[string]any{"admins": admins},
		"unknown error while adding group admins")
}

// RemoveAdmins demotes group admins.
func (c *Client) RemoveAdmins(ctx context.Context, groupID string, admins []string) error {
	if len(admins) == 0 {
		return usageErrorf("remove admins: no admins supplied")
	}
	return c.groupAction(ctx, http.MethodDelete, groupID, "/admins",
		map[string]any{"admins": admins},
		"unknown error while removing group admins")
}

// groupAction issues one of the bodyless or small-bodied group sub-resource
// calls. They all share the same success statuses.
func (c *Client) groupAction(ctx context.Context, method, groupID, subresource string, body map[string]any, fallback string) error {
	if groupID == "" {
		return usageErrorf("group id is required")
	}
	_, err := c.do(ctx, operationRequest{
		method:   method,
		path:     "/v1/groups/" + c.number + "/" + groupID + subresource,
		body:     body,
		expect:   []int{http.StatusOK, http.StatusCreated, http.StatusNoContent},
		fallback: fallback,
	})
	return err
}
