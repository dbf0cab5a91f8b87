package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusScheduled = "scheduled"
)

type BlogPost struct {
	Base
	Title       string         `db:"title" json:"title"`
	Slug        string         `db:"slug" json:"slug"`
	Excerpt     *string        `db:"excerpt" json:"excerpt,omitempty"`
	Content     string         `db:"content" json:"content"`
	CoverImage  *string        `db:"cover_image" json:"coverImage,omitempty"`
	Status      string         `db:"status" json:"status"`
	Category    *string        `db:"category" json:"category,omitempty"`
	Tags        pq.StringArray `db:"tags" json:"tags,omitempty"`
	Author      *string        `db:"author" json:"author,omitempty"`
	PublishedAt *time.Time     `db:"published_at" json:"publishedAt,omitempty"`
	ScheduledAt *time.Time     `db:"scheduled_at" json:"scheduledAt,omitempty"`
	Views       int            `db:"views" json:"views"`
	Locale      string         `db:"locale" json:"locale"`
}

// BlogQuery collects the list filters shared by the public and admin
// blog endpoints. Status is forced to published on the public surface.
type BlogQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Status   string
	Tag      string
	Locale   string
}

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type BlogPage struct {
	Data []BlogPost `json:"data"`
	Meta PageMeta   `json:"meta"`
}
