package models

import "time"

// Contributor auth flows.

type SignUpRequest struct {
	FirstName           string            `json:"first_name" binding:"required,max=50"`
	LastName            string            `json:"last_name" binding:"max=50"`
	RegistrationType    RegistrationType  `json:"registration_type" binding:"required,oneof=artist journalist organisation"`
	OrganisationName    string            `json:"organisation_name"`
	ParentOrganisations string            `json:"parent_organisations"`
	Email               string            `json:"email" binding:"required,email"`
	PhoneNumber         string            `json:"phone_number"`
	AlternativePhone    string            `json:"alternative_phone_number"`
	AddressLine1        string            `json:"address_line1"`
	AddressLine2        string            `json:"address_line2"`
	Nationality         string            `json:"nationality"`
	State               string            `json:"state"`
	City                string            `json:"city"`
	Zipcode             string            `json:"zipcode"`
	SocialMediaLinks    map[string]string `json:"social_media_links"`
	Biography           string            `json:"biography"`
	TermsAccepted       bool              `json:"terms_accepted"`
	Password            string            `json:"password" binding:"required"`
	ConfirmPassword     string            `json:"confirm_password" binding:"required"`
}

type SignInRequest struct {
	// Login accepts either the account email or the username.
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type InviteArtistRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type JournalistAuthResponse struct {
	Token      string     `json:"token"`
	Journalist Journalist `json:"journalist"`
}

// Staff auth.

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Content submission and moderation.

type SubmitNewsRequest struct {
	SubCategoryID *uint     `json:"sub_category_id"`
	Title         string    `json:"title" binding:"required,min=1,max=150"`
	ShortDesc     string    `json:"short_desc" binding:"max=160"`
	Body          string    `json:"body" binding:"required"`
	Image         string    `json:"image"`
	Tag           string    `json:"tag"`
	ScheduleDate  time.Time `json:"schedule_date"`
	// Status is deliberately absent: submissions always enter moderation.
}

type SubmitVideoRequest struct {
	SubCategoryID *uint     `json:"sub_category_id"`
	VideoType     VideoType `json:"video_type" binding:"required,oneof=video reel"`
	Title         string    `json:"title" binding:"required,min=1,max=150"`
	ShortDesc     string    `json:"short_desc" binding:"max=160"`
	Body          string    `json:"body"`
	VideoURL      string    `json:"video_url" binding:"required"`
	Thumbnail     string    `json:"thumbnail"`
	Tag           string    `json:"tag"`
	ScheduleDate  time.Time `json:"schedule_date"`
}

type ModerateContentRequest struct {
	Status ContentStatus `json:"status" binding:"required,oneof=active inactive rejected"`
}

type UpdateAccountStatusRequest struct {
	Status AccountStatus `json:"status" binding:"required,oneof=active inactive approved"`
}

type GalleryUploadRequest struct {
	// Base64 data URLs, as submitted by the gallery form.
	Images []string `json:"images" binding:"required"`
}

type SliderRequest struct {
	SubCategoryID *uint        `json:"sub_category_id"`
	Title         string       `json:"title" binding:"required,max=200"`
	Description   string       `json:"description" binding:"max=300"`
	Image         string       `json:"image" binding:"required"`
	Order         int          `json:"order"`
	Status        SliderStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateRedirectRequest struct {
	OldSlug      string `json:"old_slug" binding:"required"`
	RedirectSlug string `json:"redirect_slug" binding:"required"`
	Notes        string `json:"notes"`
}

type NewsListParams struct {
	Status    string `form:"status"`
	Headline  bool   `form:"headline"`
	Article   bool   `form:"article"`
	Trending  bool   `form:"trending"`
	Breaking  bool   `form:"breaking"`
	Event     bool   `form:"event"`
	VideoType string `form:"video_type"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	SortBy    string `form:"sort_by,default=id"`
	SortOrder string `form:"sort_order,default=desc"`
}

// DashboardStats mirrors the contributor dashboard counters.
type DashboardStats struct {
	ActivePosts    int64        `json:"active_posts"`
	InactivePosts  int64        `json:"inactive_posts"`
	RejectedPosts  int64        `json:"rejected_posts"`
	ActiveArticles int64        `json:"active_articles"`
	ActiveVideos   int64        `json:"active_videos"`
	InactiveVideos int64        `json:"inactive_videos"`
	RejectedVideos int64        `json:"rejected_videos"`
	ActiveReels    int64        `json:"active_reels"`
	InactiveReels  int64        `json:"inactive_reels"`
	RejectedReels  int64        `json:"rejected_reels"`
	TotalVideos    int64        `json:"total_videos"`
	UpcomingEvents []NewsPost   `json:"upcoming_events"`
	ChildProfiles  []Journalist `json:"child_profiles,omitempty"`
}

// SitemapFilter narrows content queries for sitemap rendering.
type SitemapFilter struct {
	ActiveOnly   bool
	ArticlesOnly bool
	WithImage    bool
	VideoOnly    bool
	From         *time.Time
	To           *time.Time
}
