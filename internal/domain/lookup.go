package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lookup table names accepted by the generic lookup/table operations. Any
// other table name is rejected before the store is touched.
const (
	TableEntityTypes = "entity_types"
	TableWilayas     = "wilayas"
	TableCategories  = "categories"
	TableMediaTypes  = "media_types"
)

var lookupTables = map[string]bool{
	TableEntityTypes: true,
	TableWilayas:     true,
	TableCategories:  true,
	TableMediaTypes:  true,
}

func ValidLookupTable(table string) bool { return lookupTables[table] }

type EntityType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name string    `gorm:"column:name;not null" json:"name"`
}

func (EntityType) TableName() string { return TableEntityTypes }

func (t *EntityType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name string    `gorm:"column:name;not null" json:"name"`
}

func (Category) TableName() string { return TableCategories }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Wilaya struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code int       `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name string    `gorm:"column:name;not null" json:"name"`
	Slug string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
}

func (Wilaya) TableName() string { return TableWilayas }

func (w *Wilaya) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type MediaType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	IconURL   string    `gorm:"column:icon_url" json:"icon_url,omitempty"`
	IconEmoji string    `gorm:"column:icon_emoji" json:"icon_emoji,omitempty"`
}

func (MediaType) TableName() string { return TableMediaTypes }

func (m *MediaType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
