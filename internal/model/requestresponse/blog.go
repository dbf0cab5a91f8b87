package requestresponse

import (
	"regexp"
	"time"

	"multipoles-backend/internal/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateBlogPostRequest : body for POST /admin/blog
type CreateBlogPostRequest struct {
	Title       string     `json:"title" example:"Nos nouveaux procédés"`
	Slug        string     `json:"slug" example:"nos-nouveaux-procedes"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Status      string     `json:"status,omitempty" example:"draft"`
	Category    *string    `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Author      *string    `json:"author,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Locale      string     `json:"locale,omitempty" example:"fr"`
}

func (r *CreateBlogPostRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("title", r.Title)
	errs.require("slug", r.Slug)
	errs.require("content", r.Content)
	if r.Slug != "" && !slugPattern.MatchString(r.Slug) {
		errs["slug"] = "must contain only lowercase letters, digits and hyphens"
	}
	if r.Status != "" {
		errs.oneOf("status", r.Status, model.BlogStatusDraft, model.BlogStatusPublished, model.BlogStatusScheduled)
	}
	if r.Status == model.BlogStatusScheduled && r.ScheduledAt == nil {
		errs["scheduledAt"] = "is required for scheduled posts"
	}
	return errs.err()
}

// ToModel maps the request onto a fresh post. Identity and counters are
// filled in by the service.
func (r *CreateBlogPostRequest) ToModel() *model.BlogPost {
	return &model.BlogPost{
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		CoverImage:  r.CoverImage,
		Status:      r.Status,
		Category:    r.Category,
		Tags:        r.Tags,
		Author:      r.Author,
		ScheduledAt: r.ScheduledAt,
		Locale:      r.Locale,
	}
}

// UpdateBlogPostRequest reuses the create shape, every field replaced
// wholesale on update.
type UpdateBlogPostRequest = CreateBlogPostRequest

// ScheduleBlogPostRequest : body for POST /admin/blog/{id}/schedule
type ScheduleBlogPostRequest struct {
	ScheduledAt time.Time `json:"scheduledAt"`
}

func (r *ScheduleBlogPostRequest) Validate() error {
	errs := fieldErrors{}
	if r.ScheduledAt.IsZero() {
		errs["scheduledAt"] = "is required"
	} else if !r.ScheduledAt.After(time.Now()) {
		errs["scheduledAt"] = "must be in the future"
	}
	return errs.err()
}

// UploadURLRequest : body for presigned-upload endpoints
type UploadURLRequest struct {
	Filename string `json:"filename" example:"cover.jpg"`
}

func (r *UploadURLRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("filename", r.Filename)
	return errs.err()
}
