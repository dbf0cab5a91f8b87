package model

import "github.com/lib/pq"

type CarouselSlide struct {
	Base
	Title    string  `db:"title" json:"title"`
	Subtitle *string `db:"subtitle" json:"subtitle,omitempty"`
	Image    string  `db:"image" json:"image"`
	CTAText  *string `db:"cta_text" json:"ctaText,omitempty"`
	CTALink  *string `db:"cta_link" json:"ctaLink,omitempty"`
	Position int     `db:"position" json:"position"`
	Locale   string  `db:"locale" json:"locale"`
	IsActive bool    `db:"is_active" json:"isActive"`
}

type TeamMember struct {
	Base
	Name     string  `db:"name" json:"name"`
	JobTitle string  `db:"job_title" json:"position"`
	Photo    *string `db:"photo" json:"photo,omitempty"`
	Bio      *string `db:"bio" json:"bio,omitempty"`
	Locale   string  `db:"locale" json:"locale"`
	Position int     `db:"position" json:"order"`
	Email    *string `db:"email" json:"email,omitempty"`
	Phone    *string `db:"phone" json:"phone,omitempty"`
	LinkedIn *string `db:"linkedin" json:"linkedin,omitempty"`
	Active   bool    `db:"active" json:"active"`
}

type Solution struct {
	Base
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Image       *string `db:"image" json:"image,omitempty"`
	Icon        *string `db:"icon" json:"icon,omitempty"`
	Locale      string  `db:"locale" json:"locale"`
	Position    int     `db:"position" json:"order"`
	IsActive    bool    `db:"is_active" json:"isActive"`
}

const (
	RealisationStatusDraft     = "draft"
	RealisationStatusPublished = "published"
)

type Realisation struct {
	Base
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	Category     *string        `db:"category" json:"category,omitempty"`
	Images       pq.StringArray `db:"images" json:"images,omitempty"`
	Thumbnail    *string        `db:"thumbnail" json:"thumbnail,omitempty"`
	Technologies pq.StringArray `db:"technologies" json:"technologies,omitempty"`
	ClientName   *string        `db:"client_name" json:"clientName,omitempty"`
	ProjectDate  *string        `db:"project_date" json:"projectDate,omitempty"`
	Status       string         `db:"status" json:"status"`
	Featured     bool           `db:"featured" json:"featured"`
	Locale       string         `db:"locale" json:"locale"`
}

// UploadTarget is handed to admin clients that upload assets directly
// to the bucket with a presigned PUT.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
}

type Model3D struct {
	Base
	Name            string  `db:"name" json:"name"`
	Description     *string `db:"description" json:"description,omitempty"`
	Category        string  `db:"category" json:"category"`
	ModelURL        string  `db:"model_url" json:"modelUrl"`
	ThumbnailURL    *string `db:"thumbnail_url" json:"thumbnailUrl,omitempty"`
	DefaultSettings JSONMap `db:"default_settings" json:"defaultSettings,omitempty"`
	IsActive        bool    `db:"is_active" json:"isActive"`
	Position        int     `db:"position" json:"order"`
	Locale          string  `db:"locale" json:"locale"`
}
