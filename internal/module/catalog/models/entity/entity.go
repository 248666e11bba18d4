package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Image owners, also used as the storage folder.
const (
	KindBrand  = "brands"
	KindCamera = "cameras"
	KindBanner = "banners"
)

type Brand struct {
	ID        uuid.UUID      `db:"id"`
	Name      sql.NullString `db:"name"`
	Image     string         `db:"image"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type Camera struct {
	ID        uuid.UUID `db:"id"`
	BrandID   uuid.UUID `db:"brand_id"`
	Name      string    `db:"name"`
	Price     string    `db:"price"`
	Available bool      `db:"available"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Feature struct {
	ID        uuid.UUID `db:"id"`
	CameraID  uuid.UUID `db:"camera_id"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

type Banner struct {
	ID        uuid.UUID `db:"id"`
	Image     string    `db:"image"`
	Title     string    `db:"title"`
	Subtitle  string    `db:"subtitle"`
	Event     string    `db:"event"`
	CreatedAt time.Time `db:"created_at"`
}

// CameraFilter narrows ListCameras; invalid fields are ignored.
type CameraFilter struct {
	Available sql.NullBool
	BrandID   uuid.NullUUID
}
