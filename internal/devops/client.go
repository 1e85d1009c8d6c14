// Package devops creates linked work item hierarchies in Azure DevOps.
// A project estimate uploads as Epic -> Features -> User Stories -> Tasks,
// each tier parented to the one above via link relations.
package devops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Azure DevOps REST endpoint root
	DefaultBaseURL = "https://dev.azure.com"
	// apiVersion is the work item tracking API version this client speaks
	apiVersion = "7.0"
	// DefaultTimeout bounds each work item creation round trip
	DefaultTimeout = 30 * time.Second
)

// Field keys used in work item field patches
const (
	FieldTitle            = "System.Title"
	FieldAreaPath         = "System.AreaPath"
	FieldIterationPath    = "System.IterationPath"
	FieldDescription      = "System.Description"
	FieldOriginalEstimate = "Microsoft.VSTS.Scheduling.OriginalEstimate"
)

// hierarchyReverse is the link type pointing a child at its parent
const hierarchyReverse = "System.LinkTypes.Hierarchy-Reverse"

// Client talks to the Azure DevOps work item tracking API for one
// organization/project pair.
type Client struct {
	organization string
	project      string
	auth         string
	team         string
	baseURL      string
	httpClient   *http.Client
}

// NewClient creates a client authenticated with the given personal access
// token. Azure DevOps basic auth uses a blank username and the PAT as
// password.
func NewClient(organization, project, pat string) *Client {
	return &Client{
		organization: organization,
		project:      project,
		auth:         base64.StdEncoding.EncodeToString([]byte(":" + pat)),
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
	}
}

// SetBaseURL overrides the API endpoint root. Used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// patchOp is one JSON-Patch operation in a work item create request.
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// parentLink is the relation value pointing a new item at its parent.
type parentLink struct {
	Rel string `json:"rel"`
	URL string `json:"url"`
}

// WorkItem is the subset of the create response the app consumes.
type WorkItem struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// RemoteError carries a non-success response from the work item API.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("devops: remote returned status %d: %s", e.StatusCode, e.Body)
}

// CreateWorkItem creates a single work item of the given type. Fields are
// sent as JSON-Patch add operations; a non-zero parentID appends a
// parent-link relation, which requires the parent to already exist.
func (c *Client) CreateWorkItem(ctx context.Context, itemType string, fields map[string]any, parentID int) (*WorkItem, error) {
	ops := make([]patchOp, 0, len(fields)+1)
	// Title first keeps request payloads stable for debugging
	if title, ok := fields[FieldTitle]; ok {
		ops = append(ops, patchOp{Op: "add", Path: "/fields/" + FieldTitle, Value: title})
	}
	for key, value := range fields {
		if key == FieldTitle {
			continue
		}
		ops = append(ops, patchOp{Op: "add", Path: "/fields/" + key, Value: value})
	}

	if parentID != 0 {
		ops = append(ops, patchOp{
			Op:   "add",
			Path: "/relations/-",
			Value: parentLink{
				Rel: hierarchyReverse,
				URL: c.workItemURL(parentID),
			},
		})
	}

	body, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("encode work item patch: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/_apis/wit/workitems/$%s?api-version=%s",
		c.baseURL, c.organization, c.project, itemType, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json-patch+json")
	req.Header.Set("Authorization", "Basic "+c.auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("devops request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read devops response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var item WorkItem
	if err := json.Unmarshal(respBody, &item); err != nil {
		return nil, fmt.Errorf("decode work item response: %w", err)
	}
	return &item, nil
}

// workItemURL returns the canonical URI for an existing work item, used as
// the target of parent-link relations.
func (c *Client) workItemURL(id int) string {
	return fmt.Sprintf("%s/%s/%s/_apis/wit/workitems/%d", c.baseURL, c.organization, c.project, id)
}
