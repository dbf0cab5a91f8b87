package requestresponse

import "multipoles-backend/internal/model"

// CarouselSlideRequest : body for carousel create and update
type CarouselSlideRequest struct {
	Title    string  `json:"title" example:"Fabrication sur mesure"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    string  `json:"image"`
	CTAText  *string `json:"ctaText,omitempty"`
	CTALink  *string `json:"ctaLink,omitempty"`
	Position int     `json:"position"`
	Locale   string  `json:"locale,omitempty" example:"fr"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (r *CarouselSlideRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("title", r.Title)
	errs.require("image", r.Image)
	return errs.err()
}

func (r *CarouselSlideRequest) ToModel() *model.CarouselSlide {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.CarouselSlide{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Image:    r.Image,
		CTAText:  r.CTAText,
		CTALink:  r.CTALink,
		Position: r.Position,
		Locale:   r.Locale,
		IsActive: active,
	}
}

// TeamMemberRequest : body for team create and update
type TeamMemberRequest struct {
	Name     string  `json:"name" example:"Marie Dupont"`
	Position string  `json:"position" example:"Directrice technique"`
	Photo    *string `json:"photo,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Locale   string  `json:"locale,omitempty" example:"fr"`
	Order    int     `json:"order"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func (r *TeamMemberRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("name", r.Name)
	errs.require("position", r.Position)
	if r.Email != nil && *r.Email != "" {
		errs.email("email", *r.Email)
	}
	return errs.err()
}

func (r *TeamMemberRequest) ToModel() *model.TeamMember {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &model.TeamMember{
		Name:     r.Name,
		JobTitle: r.Position,
		Photo:    r.Photo,
		Bio:      r.Bio,
		Locale:   r.Locale,
		Position: r.Order,
		Email:    r.Email,
		Phone:    r.Phone,
		LinkedIn: r.LinkedIn,
		Active:   active,
	}
}

// SolutionRequest : body for solution create and update
type SolutionRequest struct {
	Title       string  `json:"title" example:"Découpe laser"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Locale      string  `json:"locale,omitempty" example:"fr"`
	Order       int     `json:"order"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *SolutionRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("title", r.Title)
	errs.require("description", r.Description)
	return errs.err()
}

func (r *SolutionRequest) ToModel() *model.Solution {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Solution{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Icon:        r.Icon,
		Locale:      r.Locale,
		Position:    r.Order,
		IsActive:    active,
	}
}

// RealisationRequest : body for portfolio create and update
type RealisationRequest struct {
	Title        string   `json:"title" example:"Enseigne lumineuse"`
	Description  string   `json:"description"`
	Category     *string  `json:"category,omitempty"`
	Images       []string `json:"images,omitempty"`
	Thumbnail    *string  `json:"thumbnail,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	ClientName   *string  `json:"clientName,omitempty"`
	ProjectDate  *string  `json:"projectDate,omitempty"`
	Status       string   `json:"status,omitempty" example:"draft"`
	Featured     bool     `json:"featured"`
	Locale       string   `json:"locale,omitempty" example:"fr"`
}

func (r *RealisationRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("title", r.Title)
	errs.require("description", r.Description)
	if r.Status != "" {
		errs.oneOf("status", r.Status, model.RealisationStatusDraft, model.RealisationStatusPublished)
	}
	return errs.err()
}

func (r *RealisationRequest) ToModel() *model.Realisation {
	return &model.Realisation{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Images:       r.Images,
		Thumbnail:    r.Thumbnail,
		Technologies: r.Technologies,
		ClientName:   r.ClientName,
		ProjectDate:  r.ProjectDate,
		Status:       r.Status,
		Featured:     r.Featured,
		Locale:       r.Locale,
	}
}

// Model3DRequest : body for 3D model create and update
type Model3DRequest struct {
	Name            string        `json:"name" example:"Presse hydraulique"`
	Description     *string       `json:"description,omitempty"`
	Category        string        `json:"category" example:"machines"`
	ModelURL        string        `json:"modelUrl"`
	ThumbnailURL    *string       `json:"thumbnailUrl,omitempty"`
	DefaultSettings model.JSONMap `json:"defaultSettings,omitempty"`
	IsActive        *bool         `json:"isActive,omitempty"`
	Order           int           `json:"order"`
	Locale          string        `json:"locale,omitempty" example:"fr"`
}

func (r *Model3DRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("name", r.Name)
	errs.require("category", r.Category)
	errs.require("modelUrl", r.ModelURL)
	return errs.err()
}

func (r *Model3DRequest) ToModel() *model.Model3D {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Model3D{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		ModelURL:        r.ModelURL,
		ThumbnailURL:    r.ThumbnailURL,
		DefaultSettings: r.DefaultSettings,
		IsActive:        active,
		Position:        r.Order,
		Locale:          r.Locale,
	}
}
