package models

import (
	"time"
)

type RegistrationType string

const (
	RegistrationArtist       RegistrationType = "artist"
	RegistrationJournalist   RegistrationType = "journalist"
	RegistrationOrganisation RegistrationType = "organisation"
)

type AccountStatus string

const (
	AccountInactive AccountStatus = "inactive"
	AccountActive   AccountStatus = "active"
	AccountApproved AccountStatus = "approved"
)

// Journalist is a registered contributor: an individual artist, a
// journalist or an organisation. Username is assigned exactly once at
// first persistence and never recomputed.
type Journalist struct {
	ID                     uint              `json:"id" gorm:"primarykey"`
	Username               string            `json:"username" gorm:"uniqueIndex;not null"`
	RegistrationType       RegistrationType  `json:"registration_type"`
	OrganisationName       string            `json:"organisation_name"`
	ParentOrganisations    string            `json:"parent_organisations"`
	FirstName              string            `json:"first_name"`
	LastName               string            `json:"last_name"`
	Email                  string            `json:"email" gorm:"uniqueIndex"`
	PhoneNumber            string            `json:"phone_number"`
	AlternativePhoneNumber string            `json:"alternative_phone_number"`
	AddressLine1           string            `json:"address_line1"`
	AddressLine2           string            `json:"address_line2"`
	Nationality            string            `json:"nationality"`
	State                  string            `json:"state"`
	City                   string            `json:"city"`
	Zipcode                string            `json:"zipcode"`
	SocialMediaLinks       map[string]string `json:"social_media_links" gorm:"serializer:json"`
	ProfilePicture         string            `json:"profile_picture"`
	PassportDocument       string            `json:"-"`
	GovernmentDocument     string            `json:"-"`
	Biography              string            `json:"biography"`
	TermsAccepted          bool              `json:"terms_accepted"`
	GalleryPostLimit       int               `json:"gallery_post_limit" gorm:"default:8"`
	Password               string            `json:"-" gorm:"not null"`
	Status                 AccountStatus     `json:"status" gorm:"default:'inactive'"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// DisplayName is the salutation used in outbound mail.
func (j *Journalist) DisplayName() string {
	if j.RegistrationType == RegistrationOrganisation && j.OrganisationName != "" {
		return j.OrganisationName
	}
	if j.FirstName == "" && j.LastName == "" {
		return j.Username
	}
	return j.FirstName + " " + j.LastName
}
