package devops

import (
	"context"
	"fmt"

	"github.com/rcastro/estimator/internal/estimate"
)

// ValidationError reports a child step whose parent reference does not
// resolve to an item created earlier in the same upload.
type ValidationError struct {
	StepName   string
	StepType   estimate.StepType
	ParentName string
	ParentTier string
}

func (e *ValidationError) Error() string {
	if e.ParentName == "" {
		return fmt.Sprintf("%s %q has no parent %s set", e.StepType, e.StepName, e.ParentTier)
	}
	return fmt.Sprintf("%s %q references parent %s %q, which was not created in this upload",
		e.StepType, e.StepName, e.ParentTier, e.ParentName)
}

// UploadResult holds the identifiers created by one upload.
type UploadResult struct {
	EpicID int
	// Items maps step names to their created work item ids, across all tiers
	Items map[string]int
}

// Upload materializes the project as a 4-tier work item hierarchy. Creation
// order is strict regardless of the input step order: the Epic, then every
// Feature, then every User Story, then every Task, each pass in input order.
// Parents must exist before children because the link relation targets an
// existing item. On any failure the upload stops immediately; items already
// created remain on the remote system (no compensating deletes).
func (c *Client) Upload(ctx context.Context, project estimate.Project) (*UploadResult, error) {
	areaPath := fmt.Sprintf("%s\\%s", c.project, c.areaTeam())
	iterationPath := fmt.Sprintf("%s\\%s", c.project, c.project)

	baseFields := func(title string) map[string]any {
		return map[string]any{
			FieldTitle:         title,
			FieldAreaPath:      areaPath,
			FieldIterationPath: iterationPath,
		}
	}

	// The Epic is created unconditionally, even for an empty step list
	epicTitle := fmt.Sprintf("%s - %s", project.Demand, project.Name)
	epic, err := c.CreateWorkItem(ctx, "Epic", baseFields(epicTitle), 0)
	if err != nil {
		return nil, fmt.Errorf("create epic: %w", err)
	}

	result := &UploadResult{
		EpicID: epic.ID,
		Items:  map[string]int{},
	}

	// Pass 1: Features under the Epic
	for _, step := range project.Steps {
		if step.Type != estimate.TypeFeature {
			continue
		}
		item, err := c.CreateWorkItem(ctx, string(estimate.TypeFeature), baseFields(step.Name), epic.ID)
		if err != nil {
			return nil, fmt.Errorf("create feature %q: %w", step.Name, err)
		}
		result.Items[step.Name] = item.ID
	}

	// Pass 2: User Stories under Features
	for _, step := range project.Steps {
		if step.Type != estimate.TypeUserStory {
			continue
		}
		parentID, ok := result.Items[step.Parent]
		if !ok {
			return nil, &ValidationError{
				StepName:   step.Name,
				StepType:   estimate.TypeUserStory,
				ParentName: step.Parent,
				ParentTier: "Feature",
			}
		}
		item, err := c.CreateWorkItem(ctx, string(estimate.TypeUserStory), baseFields(step.Name), parentID)
		if err != nil {
			return nil, fmt.Errorf("create user story %q: %w", step.Name, err)
		}
		result.Items[step.Name] = item.ID
	}

	// Pass 3: Tasks under the items created so far, carrying the estimate
	for _, step := range project.Steps {
		if step.Type != estimate.TypeTask {
			continue
		}
		parentID, ok := result.Items[step.Parent]
		if !ok {
			return nil, &ValidationError{
				StepName:   step.Name,
				StepType:   estimate.TypeTask,
				ParentName: step.Parent,
				ParentTier: "User Story",
			}
		}
		fields := baseFields(step.Name)
		fields[FieldOriginalEstimate] = step.Hours
		item, err := c.CreateWorkItem(ctx, string(estimate.TypeTask), fields, parentID)
		if err != nil {
			return nil, fmt.Errorf("create task %q: %w", step.Name, err)
		}
		result.Items[step.Name] = item.ID
	}

	return result, nil
}

// areaTeam returns the team segment for area paths. Overridable via
// SetAreaTeam; defaults to the delivery team the original process targets.
func (c *Client) areaTeam() string {
	if c.team != "" {
		return c.team
	}
	return "Digital Delivery Team"
}

// SetAreaTeam overrides the team segment used in area paths.
func (c *Client) SetAreaTeam(team string) {
	c.team = team
}
