package models

import (
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
)

// ContentAssetModel is the GORM database model for content assets (infrastructure concern)
type ContentAssetModel struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	Type    string `gorm:"not null;index;type:varchar(20)"`
	Title   string `gorm:"not null;type:varchar(255)"`
	Content string `gorm:"type:text"`

	EmailVariant string `gorm:"type:text"`
	AudioURL     string `gorm:"type:varchar(512)"`
	VideoURL     string `gorm:"type:varchar(512)"`

	Published       bool `gorm:"not null;default:false"`
	PublishedAt     *time.Time
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ContentAssetModel) TableName() string {
	return "content_assets"
}

// ToDomain converts GORM model to domain entity
func (m *ContentAssetModel) ToDomain() *content.ContentAsset {
	return &content.ContentAsset{
		ID:              m.ID,
		Type:            m.Type,
		Title:           m.Title,
		Content:         m.Content,
		EmailVariant:    m.EmailVariant,
		AudioURL:        m.AudioURL,
		VideoURL:        m.VideoURL,
		Published:       m.Published,
		PublishedAt:     m.PublishedAt,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContentAssetModel) FromDomain(a *content.ContentAsset) {
	m.ID = a.ID
	m.Type = a.Type
	m.Title = a.Title
	m.Content = a.Content
	m.EmailVariant = a.EmailVariant
	m.AudioURL = a.AudioURL
	m.VideoURL = a.VideoURL
	m.Published = a.Published
	m.PublishedAt = a.PublishedAt
	m.DateTimeCreated = a.DateTimeCreated
}
