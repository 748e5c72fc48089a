package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Entity is the central directory record. The type tag decides which extra
// relations are legal: categories for startups, media types for media.
type Entity struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Slug     string      `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	TypeID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"type_id"`
	Type     *EntityType `gorm:"foreignKey:TypeID;references:ID" json:"type,omitempty"`
	WilayaID *uuid.UUID  `gorm:"type:uuid;index" json:"wilaya_id,omitempty"`
	Wilaya   *Wilaya     `gorm:"foreignKey:WilayaID;references:ID" json:"wilaya,omitempty"`

	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Website     string `gorm:"column:website" json:"website,omitempty"`
	Linkedin    string `gorm:"column:linkedin" json:"linkedin,omitempty"`
	FoundedYear *int   `gorm:"column:founded_year" json:"founded_year,omitempty"`
	MapLocation string `gorm:"column:map_location" json:"map_location,omitempty"`
	ImageURL    string `gorm:"column:image_url" json:"image_url,omitempty"`

	Status string `gorm:"column:status;not null;default:'pending';index" json:"status"`

	Categories []Category  `gorm:"many2many:entity_categories" json:"categories,omitempty"`
	MediaTypes []MediaType `gorm:"many2many:entity_media_types" json:"media_types,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Entity) TableName() string { return "entities" }

func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EntityCategory is the (entity_id, category_id) join row; unique on the pair.
type EntityCategory struct {
	EntityID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"entity_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (EntityCategory) TableName() string { return "entity_categories" }

// EntityMediaType is the (entity_id, media_type_id) join row; unique on the pair.
type EntityMediaType struct {
	EntityID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"entity_id"`
	MediaTypeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"media_type_id"`
}

func (EntityMediaType) TableName() string { return "entity_media_types" }
