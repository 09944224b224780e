package entity

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// majorPublishers is the fixed list used to classify a publisher as "major"
// by name substring match.
var majorPublishers = []string{
	"penguin",
	"random house",
	"harper collins",
	"simon & schuster",
	"macmillan",
	"hachette",
	"scholastic",
	"disney",
	"wiley",
	"springer",
	"elsevier",
	"oxford university press",
	"cambridge university press",
}

// Publisher is a validated catalog entity identified by ID.
type Publisher struct {
	ID        uuid.UUID
	Name      string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPublisher(name, website string) (*Publisher, error) {
	p := &Publisher{
		ID:        uuid.New(),
		Name:      name,
		Website:   website,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := validateName("name", "publisher name", p.Name); err != nil {
		return nil, err
	}
	if err := validateWebsite(p.Website); err != nil {
		return nil, err
	}
	return p, nil
}

// validateWebsite requires an absolute http or https URL.
func validateWebsite(website string) error {
	if strings.TrimSpace(website) == "" {
		return ValidationError{Field: "website", Message: "website URL cannot be empty"}
	}
	u, err := url.Parse(website)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "website", Message: "invalid website URL format"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "website", Message: "website URL must use HTTP or HTTPS protocol"}
	}
	return nil
}

func (p *Publisher) IsMajorPublisher() bool {
	name := strings.ToLower(p.Name)
	for _, major := range majorPublishers {
		if strings.Contains(name, major) {
			return true
		}
	}
	return false
}

func (p *Publisher) IsUniversityPress() bool {
	name := strings.ToLower(p.Name)
	return strings.Contains(name, "university press") || strings.Contains(name, "university of")
}

func (p *Publisher) IsIndependentPublisher() bool {
	return !p.IsMajorPublisher() && !p.IsUniversityPress()
}

// Domain extracts the host part of the website URL, empty when unparsable.
func (p *Publisher) Domain() string {
	u, err := url.Parse(p.Website)
	if err != nil {
		return ""
	}
	return u.Host
}

func (p *Publisher) DisplayName() string { return strings.TrimSpace(p.Name) }

// Rename updates the publisher name; the entity is unchanged on failure.
func (p *Publisher) Rename(name string) error {
	if err := validateName("name", "publisher name", name); err != nil {
		return err
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// SetWebsite updates the website URL; the entity is unchanged on failure.
func (p *Publisher) SetWebsite(website string) error {
	if err := validateWebsite(website); err != nil {
		return err
	}
	p.Website = website
	p.UpdatedAt = time.Now()
	return nil
}
