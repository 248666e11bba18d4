package repositories

import (
	"camera-rental-service/internal/module/catalog/models/entity"
	"camera-rental-service/internal/pkg/database"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/log"
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	brandColumns   = `id, name, image, created_at, updated_at`
	cameraColumns  = `id, brand_id, name, price, available, image, created_at, updated_at`
	featureColumns = `id, camera_id, value, created_at`
	bannerColumns  = `id, image, title, subtitle, event, created_at`

	msgCameraBooked = "camera is referenced by bookings"
)

var imageTables = map[string]string{
	entity.KindBrand:  "brands",
	entity.KindCamera: "cameras",
	entity.KindBanner: "banners",
}

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// db
	InsertBrand(ctx context.Context, brand entity.Brand) error
	UpdateBrand(ctx context.Context, brand entity.Brand) error
	FindBrandByID(ctx context.Context, brandID uuid.UUID) (entity.Brand, error)
	FindBrands(ctx context.Context) ([]entity.Brand, error)
	DeleteBrand(ctx context.Context, brandID uuid.UUID, cascade bool) error
	InsertCamera(ctx context.Context, camera entity.Camera) error
	UpdateCamera(ctx context.Context, camera entity.Camera) error
	FindCameraByID(ctx context.Context, cameraID uuid.UUID) (entity.Camera, error)
	FindCameras(ctx context.Context, filter entity.CameraFilter) ([]entity.Camera, error)
	DeleteCamera(ctx context.Context, cameraID uuid.UUID) error
	InsertFeature(ctx context.Context, feature entity.Feature) error
	FindFeaturesByCameraID(ctx context.Context, cameraID uuid.UUID) ([]entity.Feature, error)
	DeleteFeature(ctx context.Context, featureID uuid.UUID) error
	InsertBanner(ctx context.Context, banner entity.Banner) error
	FindBannerByID(ctx context.Context, bannerID uuid.UUID) (entity.Banner, error)
	FindBanners(ctx context.Context) ([]entity.Banner, error)
	DeleteBanner(ctx context.Context, bannerID uuid.UUID) error
	UpdateImage(ctx context.Context, kind string, id uuid.UUID, image string) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// exec runs a single-row statement and maps zero affected rows to NotFound.
func (r *repositories) exec(ctx context.Context, op, missing string, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict(msgCameraBooked)
		}
		r.log.Error(ctx, "error "+op, err)
		return errors.InternalServerError("error " + op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.log.Error(ctx, "error "+op, err)
		return errors.InternalServerError("error " + op)
	}
	if n == 0 {
		return errors.NotFound(missing)
	}
	return nil
}

// InsertBrand implements Repositories.
func (r *repositories) InsertBrand(ctx context.Context, brand entity.Brand) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO brands (id, name, image, created_at, updated_at)
		VALUES (:id, :name, :image, :created_at, :updated_at)`, brand)
	if err != nil {
		r.log.Error(ctx, "error insert brand", err)
		return errors.InternalServerError("error insert brand")
	}
	return nil
}

// UpdateBrand implements Repositories.
func (r *repositories) UpdateBrand(ctx context.Context, brand entity.Brand) error {
	return r.exec(ctx, "update brand", "brand not found",
		`UPDATE brands SET name = $1, updated_at = $2 WHERE id = $3`, brand.Name, brand.UpdatedAt, brand.ID)
}

// FindBrandByID implements Repositories.
func (r *repositories) FindBrandByID(ctx context.Context, brandID uuid.UUID) (entity.Brand, error) {
	var brand entity.Brand
	err := r.db.GetContext(ctx, &brand, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, brandID)
	if err == sql.ErrNoRows {
		return entity.Brand{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find brand by id", err)
		return entity.Brand{}, errors.InternalServerError("error find brand by id")
	}
	return brand, nil
}

// FindBrands implements Repositories.
func (r *repositories) FindBrands(ctx context.Context) ([]entity.Brand, error) {
	brands := []entity.Brand{}
	err := r.db.SelectContext(ctx, &brands, `SELECT `+brandColumns+` FROM brands ORDER BY name NULLS LAST, created_at`)
	if err != nil {
		r.log.Error(ctx, "error find brands", err)
		return nil, errors.InternalServerError("error find brands")
	}
	return brands, nil
}

// DeleteBrand implements Repositories. Without cascade a brand that still owns cameras
// is kept; with cascade its cameras go too, features following through the foreign key.
func (r *repositories) DeleteBrand(ctx context.Context, brandID uuid.UUID, cascade bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return errors.InternalServerError("error starting transaction")
	}
	defer tx.Rollback()

	var id uuid.UUID
	err = tx.GetContext(ctx, &id, `SELECT id FROM brands WHERE id = $1 FOR UPDATE`, brandID)
	if err == sql.ErrNoRows {
		return errors.NotFound("brand not found")
	}
	if err != nil {
		r.log.Error(ctx, "error locking brand", err)
		return errors.InternalServerError("error locking brand")
	}

	var cameras int
	if err = tx.GetContext(ctx, &cameras, `SELECT COUNT(1) FROM cameras WHERE brand_id = $1`, brandID); err != nil {
		r.log.Error(ctx, "error count brand cameras", err)
		return errors.InternalServerError("error count brand cameras")
	}

	if cameras > 0 {
		if !cascade {
			return errors.Conflict("brand still has cameras, delete with cascade")
		}

		var booked int
		err = tx.GetContext(ctx, &booked,
			`SELECT COUNT(1) FROM bookings b JOIN cameras c ON c.id = b.camera_id WHERE c.brand_id = $1`, brandID)
		if err != nil {
			r.log.Error(ctx, "error count brand bookings", err)
			return errors.InternalServerError("error count brand bookings")
		}
		if booked > 0 {
			return errors.Conflict("brand cameras are referenced by bookings")
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM cameras WHERE brand_id = $1`, brandID); err != nil {
			if database.IsForeignKeyViolation(err) {
				return errors.Conflict("brand cameras are referenced by bookings")
			}
			r.log.Error(ctx, "error delete brand cameras", err)
			return errors.InternalServerError("error delete brand cameras")
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, brandID); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict("brand still has cameras, delete with cascade")
		}
		r.log.Error(ctx, "error delete brand", err)
		return errors.InternalServerError("error delete brand")
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// InsertCamera implements Repositories.
func (r *repositories) InsertCamera(ctx context.Context, camera entity.Camera) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO cameras (id, brand_id, name, price, available, image, created_at, updated_at)
		VALUES (:id, :brand_id, :name, :price, :available, :image, :created_at, :updated_at)`, camera)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NotFound("brand not found")
		}
		r.log.Error(ctx, "error insert camera", err)
		return errors.InternalServerError("error insert camera")
	}
	return nil
}

// UpdateCamera implements Repositories.
func (r *repositories) UpdateCamera(ctx context.Context, camera entity.Camera) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE cameras SET brand_id = :brand_id, name = :name, price = :price,
		available = :available, updated_at = :updated_at WHERE id = :id`, camera)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NotFound("brand not found")
		}
		r.log.Error(ctx, "error update camera", err)
		return errors.InternalServerError("error update camera")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("camera not found")
	}
	return nil
}

// FindCameraByID implements Repositories.
func (r *repositories) FindCameraByID(ctx context.Context, cameraID uuid.UUID) (entity.Camera, error) {
	var camera entity.Camera
	err := r.db.GetContext(ctx, &camera, `SELECT `+cameraColumns+` FROM cameras WHERE id = $1`, cameraID)
	if err == sql.ErrNoRows {
		return entity.Camera{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find camera by id", err)
		return entity.Camera{}, errors.InternalServerError("error find camera by id")
	}
	return camera, nil
}

// FindCameras implements Repositories. Null filter fields match every row.
func (r *repositories) FindCameras(ctx context.Context, filter entity.CameraFilter) ([]entity.Camera, error) {
	cameras := []entity.Camera{}
	err := r.db.SelectContext(ctx, &cameras, `SELECT `+cameraColumns+` FROM cameras
		WHERE ($1::boolean IS NULL OR available = $1) AND ($2::uuid IS NULL OR brand_id = $2)
		ORDER BY created_at DESC`, filter.Available, filter.BrandID)
	if err != nil {
		r.log.Error(ctx, "error find cameras", err)
		return nil, errors.InternalServerError("error find cameras")
	}
	return cameras, nil
}

// DeleteCamera implements Repositories. Bookings keep the camera through a restricting foreign key.
func (r *repositories) DeleteCamera(ctx context.Context, cameraID uuid.UUID) error {
	return r.exec(ctx, "delete camera", "camera not found", `DELETE FROM cameras WHERE id = $1`, cameraID)
}

// InsertFeature implements Repositories.
func (r *repositories) InsertFeature(ctx context.Context, feature entity.Feature) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO features (id, camera_id, value, created_at)
		VALUES (:id, :camera_id, :value, :created_at)`, feature)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NotFound("camera not found")
		}
		r.log.Error(ctx, "error insert feature", err)
		return errors.InternalServerError("error insert feature")
	}
	return nil
}

// FindFeaturesByCameraID implements Repositories.
func (r *repositories) FindFeaturesByCameraID(ctx context.Context, cameraID uuid.UUID) ([]entity.Feature, error) {
	features := []entity.Feature{}
	err := r.db.SelectContext(ctx, &features, `SELECT `+featureColumns+` FROM features WHERE camera_id = $1 ORDER BY created_at`, cameraID)
	if err != nil {
		r.log.Error(ctx, "error find features by camera id", err)
		return nil, errors.InternalServerError("error find features by camera id")
	}
	return features, nil
}

// DeleteFeature implements Repositories.
func (r *repositories) DeleteFeature(ctx context.Context, featureID uuid.UUID) error {
	return r.exec(ctx, "delete feature", "feature not found", `DELETE FROM features WHERE id = $1`, featureID)
}

// InsertBanner implements Repositories.
func (r *repositories) InsertBanner(ctx context.Context, banner entity.Banner) error {
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO banners (id, image, title, subtitle, event, created_at)
		VALUES (:id, :image, :title, :subtitle, :event, :created_at)`, banner)
	if err != nil {
		r.log.Error(ctx, "error insert banner", err)
		return errors.InternalServerError("error insert banner")
	}
	return nil
}

// FindBannerByID implements Repositories.
func (r *repositories) FindBannerByID(ctx context.Context, bannerID uuid.UUID) (entity.Banner, error) {
	var banner entity.Banner
	err := r.db.GetContext(ctx, &banner, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, bannerID)
	if err == sql.ErrNoRows {
		return entity.Banner{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find banner by id", err)
		return entity.Banner{}, errors.InternalServerError("error find banner by id")
	}
	return banner, nil
}

// FindBanners implements Repositories.
func (r *repositories) FindBanners(ctx context.Context) ([]entity.Banner, error) {
	banners := []entity.Banner{}
	err := r.db.SelectContext(ctx, &banners, `SELECT `+bannerColumns+` FROM banners ORDER BY created_at DESC`)
	if err != nil {
		r.log.Error(ctx, "error find banners", err)
		return nil, errors.InternalServerError("error find banners")
	}
	return banners, nil
}

// DeleteBanner implements Repositories.
func (r *repositories) DeleteBanner(ctx context.Context, bannerID uuid.UUID) error {
	return r.exec(ctx, "delete banner", "banner not found", `DELETE FROM banners WHERE id = $1`, bannerID)
}

// UpdateImage implements Repositories.
func (r *repositories) UpdateImage(ctx context.Context, kind string, id uuid.UUID, image string) error {
	table, ok := imageTables[kind]
	if !ok {
		return errors.BadRequest("unknown image owner " + kind)
	}
	if kind == entity.KindBanner {
		return r.exec(ctx, "update "+kind+" image", "banner not found", `UPDATE banners SET image = $1 WHERE id = $2`, image, id)
	}
	return r.exec(ctx, "update "+kind+" image", kind[:len(kind)-1]+" not found",
		`UPDATE `+table+` SET image = $1, updated_at = $2 WHERE id = $3`, image, time.Now().UTC(), id)
}
