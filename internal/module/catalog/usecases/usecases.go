package usecases

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/module/catalog/models/entity"
	"camera-rental-service/internal/module/catalog/models/request"
	"camera-rental-service/internal/module/catalog/models/response"
	"camera-rental-service/internal/module/catalog/repositories"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/storage"
	"context"
	"database/sql"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	storage storage.Storage
	cfg     *config.Config
}

type Usecase interface {
	CreateBrand(ctx context.Context, payload *request.Brand) (response.Brand, error)
	UpdateBrand(ctx context.Context, brandID string, payload *request.Brand) (response.Brand, error)
	DeleteBrand(ctx context.Context, brandID string, cascade bool) error
	GetBrand(ctx context.Context, brandID string) (response.Brand, error)
	ListBrands(ctx context.Context) ([]response.Brand, error)
	CreateCamera(ctx context.Context, payload *request.Camera) (response.Camera, error)
	UpdateCamera(ctx context.Context, cameraID string, payload *request.Camera) (response.Camera, error)
	DeleteCamera(ctx context.Context, cameraID string) error
	GetCamera(ctx context.Context, cameraID string) (response.Camera, error)
	ListCameras(ctx context.Context, filter *request.CameraFilter) ([]response.Camera, error)
	AddFeature(ctx context.Context, cameraID string, payload *request.Feature) (response.Feature, error)
	DeleteFeature(ctx context.Context, featureID string) error
	CreateBanner(ctx context.Context, payload *request.Banner) (response.Banner, error)
	DeleteBanner(ctx context.Context, bannerID string) error
	ListBanners(ctx context.Context) ([]response.Banner, error)
	UploadImage(ctx context.Context, kind string, id string, fh *multipart.FileHeader) (response.Image, error)
}

func New(repo repositories.Repositories, log log.Logger, st storage.Storage, cfg *config.Config) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		storage: st,
		cfg:     cfg,
	}
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.BadRequest("invalid " + field)
	}
	return id, nil
}

// parsePrice accepts positive decimal strings and returns them in canonical form.
func parsePrice(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return "", errors.BadRequest("price must be a positive decimal")
	}
	return d.String(), nil
}

func toBrandResponse(b entity.Brand) response.Brand {
	return response.Brand{
		ID:        b.ID.String(),
		Name:      b.Name.String,
		Image:     b.Image,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func toCameraResponse(c entity.Camera, features []entity.Feature) response.Camera {
	resp := response.Camera{
		ID:        c.ID.String(),
		BrandID:   c.BrandID.String(),
		Name:      c.Name,
		Price:     c.Price,
		Available: c.Available,
		Image:     c.Image,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	for _, f := range features {
		resp.Features = append(resp.Features, toFeatureResponse(f))
	}
	return resp
}

func toFeatureResponse(f entity.Feature) response.Feature {
	return response.Feature{ID: f.ID.String(), CameraID: f.CameraID.String(), Value: f.Value}
}

func toBannerResponse(b entity.Banner) response.Banner {
	return response.Banner{ID: b.ID.String(), Image: b.Image, Title: b.Title, Subtitle: b.Subtitle, Event: b.Event}
}

func (u *usecase) findBrand(ctx context.Context, brandID uuid.UUID) (entity.Brand, error) {
	brand, err := u.repo.FindBrandByID(ctx, brandID)
	if err != nil {
		return entity.Brand{}, err
	}
	if brand.ID == uuid.Nil {
		return entity.Brand{}, errors.NotFound("brand not found")
	}
	return brand, nil
}

func (u *usecase) findCamera(ctx context.Context, cameraID uuid.UUID) (entity.Camera, error) {
	camera, err := u.repo.FindCameraByID(ctx, cameraID)
	if err != nil {
		return entity.Camera{}, err
	}
	if camera.ID == uuid.Nil {
		return entity.Camera{}, errors.NotFound("camera not found")
	}
	return camera, nil
}

func (u *usecase) CreateBrand(ctx context.Context, payload *request.Brand) (response.Brand, error) {
	now := time.Now().UTC()
	name := strings.TrimSpace(payload.Name)
	brand := entity.Brand{
		ID:        uuid.New(),
		Name:      sql.NullString{String: name, Valid: name != ""},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.InsertBrand(ctx, brand); err != nil {
		return response.Brand{}, err
	}
	return toBrandResponse(brand), nil
}

func (u *usecase) UpdateBrand(ctx context.Context, brandID string, payload *request.Brand) (response.Brand, error) {
	id, err := parseID(brandID, "brand id")
	if err != nil {
		return response.Brand{}, err
	}

	brand, err := u.findBrand(ctx, id)
	if err != nil {
		return response.Brand{}, err
	}

	name := strings.TrimSpace(payload.Name)
	brand.Name = sql.NullString{String: name, Valid: name != ""}
	brand.UpdatedAt = time.Now().UTC()
	if err := u.repo.UpdateBrand(ctx, brand); err != nil {
		return response.Brand{}, err
	}
	return toBrandResponse(brand), nil
}

func (u *usecase) DeleteBrand(ctx context.Context, brandID string, cascade bool) error {
	span, ctx := apm.StartSpan(ctx, "DeleteBrand", "usecase")
	defer span.End()

	id, err := parseID(brandID, "brand id")
	if err != nil {
		return err
	}

	if err := u.repo.DeleteBrand(ctx, id, cascade); err != nil {
		u.log.Warn(ctx, "error delete brand", err)
		return err
	}
	return nil
}

func (u *usecase) GetBrand(ctx context.Context, brandID string) (response.Brand, error) {
	id, err := parseID(brandID, "brand id")
	if err != nil {
		return response.Brand{}, err
	}

	brand, err := u.findBrand(ctx, id)
	if err != nil {
		return response.Brand{}, err
	}
	return toBrandResponse(brand), nil
}

func (u *usecase) ListBrands(ctx context.Context) ([]response.Brand, error) {
	brands, err := u.repo.FindBrands(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Brand, 0, len(brands))
	for _, b := range brands {
		resp = append(resp, toBrandResponse(b))
	}
	return resp, nil
}

func (u *usecase) CreateCamera(ctx context.Context, payload *request.Camera) (response.Camera, error) {
	brandID, err := parseID(payload.BrandID, "brand id")
	if err != nil {
		return response.Camera{}, err
	}

	price, err := parsePrice(payload.Price)
	if err != nil {
		return response.Camera{}, err
	}

	if _, err := u.findBrand(ctx, brandID); err != nil {
		return response.Camera{}, err
	}

	now := time.Now().UTC()
	camera := entity.Camera{
		ID:        uuid.New(),
		BrandID:   brandID,
		Name:      strings.TrimSpace(payload.Name),
		Price:     price,
		Available: payload.Available == nil || *payload.Available,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.InsertCamera(ctx, camera); err != nil {
		return response.Camera{}, err
	}
	return toCameraResponse(camera, nil), nil
}

func (u *usecase) UpdateCamera(ctx context.Context, cameraID string, payload *request.Camera) (response.Camera, error) {
	id, err := parseID(cameraID, "camera id")
	if err != nil {
		return response.Camera{}, err
	}
	brandID, err := parseID(payload.BrandID, "brand id")
	if err != nil {
		return response.Camera{}, err
	}
	price, err := parsePrice(payload.Price)
	if err != nil {
		return response.Camera{}, err
	}

	camera, err := u.findCamera(ctx, id)
	if err != nil {
		return response.Camera{}, err
	}
	if camera.BrandID != brandID {
		if _, err := u.findBrand(ctx, brandID); err != nil {
			return response.Camera{}, err
		}
	}

	camera.BrandID = brandID
	camera.Name = strings.TrimSpace(payload.Name)
	camera.Price = price
	if payload.Available != nil {
		camera.Available = *payload.Available
	}
	camera.UpdatedAt = time.Now().UTC()

	if err := u.repo.UpdateCamera(ctx, camera); err != nil {
		return response.Camera{}, err
	}
	return toCameraResponse(camera, nil), nil
}

func (u *usecase) DeleteCamera(ctx context.Context, cameraID string) error {
	id, err := parseID(cameraID, "camera id")
	if err != nil {
		return err
	}
	return u.repo.DeleteCamera(ctx, id)
}

func (u *usecase) GetCamera(ctx context.Context, cameraID string) (response.Camera, error) {
	id, err := parseID(cameraID, "camera id")
	if err != nil {
		return response.Camera{}, err
	}

	camera, err := u.findCamera(ctx, id)
	if err != nil {
		return response.Camera{}, err
	}

	features, err := u.repo.FindFeaturesByCameraID(ctx, id)
	if err != nil {
		return response.Camera{}, err
	}
	return toCameraResponse(camera, features), nil
}

func (u *usecase) ListCameras(ctx context.Context, filter *request.CameraFilter) ([]response.Camera, error) {
	var f entity.CameraFilter
	if filter.Available != "" {
		f.Available = sql.NullBool{Bool: filter.Available == "true", Valid: true}
	}
	if filter.BrandID != "" {
		brandID, err := parseID(filter.BrandID, "brand id")
		if err != nil {
			return nil, err
		}
		f.BrandID = uuid.NullUUID{UUID: brandID, Valid: true}
	}

	cameras, err := u.repo.FindCameras(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Camera, 0, len(cameras))
	for _, c := range cameras {
		resp = append(resp, toCameraResponse(c, nil))
	}
	return resp, nil
}

func (u *usecase) AddFeature(ctx context.Context, cameraID string, payload *request.Feature) (response.Feature, error) {
	id, err := parseID(cameraID, "camera id")
	if err != nil {
		return response.Feature{}, err
	}

	if _, err := u.findCamera(ctx, id); err != nil {
		return response.Feature{}, err
	}

	feature := entity.Feature{
		ID:        uuid.New(),
		CameraID:  id,
		Value:     strings.TrimSpace(payload.Value),
		CreatedAt: time.Now().UTC(),
	}
	if err := u.repo.InsertFeature(ctx, feature); err != nil {
		return response.Feature{}, err
	}
	return toFeatureResponse(feature), nil
}

func (u *usecase) DeleteFeature(ctx context.Context, featureID string) error {
	id, err := parseID(featureID, "feature id")
	if err != nil {
		return err
	}
	return u.repo.DeleteFeature(ctx, id)
}

func (u *usecase) CreateBanner(ctx context.Context, payload *request.Banner) (response.Banner, error) {
	banner := entity.Banner{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(payload.Title),
		Subtitle:  strings.TrimSpace(payload.Subtitle),
		Event:     strings.TrimSpace(payload.Event),
		CreatedAt: time.Now().UTC(),
	}

	if err := u.repo.InsertBanner(ctx, banner); err != nil {
		return response.Banner{}, err
	}
	return toBannerResponse(banner), nil
}

func (u *usecase) DeleteBanner(ctx context.Context, bannerID string) error {
	id, err := parseID(bannerID, "banner id")
	if err != nil {
		return err
	}
	return u.repo.DeleteBanner(ctx, id)
}

func (u *usecase) ListBanners(ctx context.Context) ([]response.Banner, error) {
	banners, err := u.repo.FindBanners(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Banner, 0, len(banners))
	for _, b := range banners {
		resp = append(resp, toBannerResponse(b))
	}
	return resp, nil
}

// exists resolves the owner of an upload before anything is written to storage.
func (u *usecase) exists(ctx context.Context, kind string, id uuid.UUID) error {
	switch kind {
	case entity.KindBrand:
		_, err := u.findBrand(ctx, id)
		return err
	case entity.KindCamera:
		_, err := u.findCamera(ctx, id)
		return err
	case entity.KindBanner:
		banner, err := u.repo.FindBannerByID(ctx, id)
		if err != nil {
			return err
		}
		if banner.ID == uuid.Nil {
			return errors.NotFound("banner not found")
		}
		return nil
	}
	return errors.BadRequest("unknown image owner " + kind)
}

func (u *usecase) UploadImage(ctx context.Context, kind string, id string, fh *multipart.FileHeader) (response.Image, error) {
	ownerID, err := parseID(id, "id")
	if err != nil {
		return response.Image{}, err
	}

	if err := storage.Validate(fh, u.cfg.Storage.MaxSize); err != nil {
		return response.Image{}, err
	}

	if err := u.exists(ctx, kind, ownerID); err != nil {
		return response.Image{}, err
	}

	file, err := u.storage.Save(ctx, kind, fh)
	if err != nil {
		u.log.Error(ctx, "error save "+kind+" image", err)
		return response.Image{}, err
	}

	if err := u.repo.UpdateImage(ctx, kind, ownerID, file.URL); err != nil {
		if derr := u.storage.Delete(ctx, file.Path); derr != nil {
			u.log.Warn(ctx, "error delete orphan "+kind+" image", derr)
		}
		return response.Image{}, err
	}

	return response.Image{ID: ownerID.String(), Kind: kind, Image: file.URL}, nil
}
