package handler

import (
	"camera-rental-service/internal/module/catalog/models/entity"
	"camera-rental-service/internal/module/catalog/models/request"
	"camera-rental-service/internal/module/catalog/usecases"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/helpers"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CatalogHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// parse reads the JSON body into req and validates it, writing the error response itself.
func (h *CatalogHandler) parse(ctx *fiber.Ctx, req interface{}) (bool, error) {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return false, helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return false, helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}
	return true, nil
}

func (h *CatalogHandler) CreateBrand(ctx *fiber.Ctx) error {
	var req request.Brand
	if ok, err := h.parse(ctx, &req); !ok {
		return err
	}

	resp, err := h.Usecase.CreateBrand(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create brand: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create brand")
}

func (h *CatalogHandler) UpdateBrand(ctx *fiber.Ctx) error {
	var req request.Brand
	if ok, err := h.parse(ctx, &req); !ok {
		return err
	}

	resp, err := h.Usecase.UpdateBrand(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update brand: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update brand")
}

func (h *CatalogHandler) DeleteBrand(ctx *fiber.Ctx) error {
	err := h.Usecase.DeleteBrand(ctx.UserContext(), ctx.Params("id"), ctx.QueryBool("cascade"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete brand: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete brand")
}

func (h *CatalogHandler) GetBrand(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBrand(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get brand: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get brand")
}

func (h *CatalogHandler) ListBrands(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListBrands(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list brands: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list brands")
}

func (h *CatalogHandler) CreateCamera(ctx *fiber.Ctx) error {
	var req request.Camera
	if ok, err := h.parse(ctx, &req); !ok {
		return err
	}

	resp, err := h.Usecase.CreateCamera(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create camera: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create camera")
}

func (h *CatalogHandler) UpdateCamera(ctx *fiber.Ctx) error {
	var req request.Camera
	if ok, err := h.parse(ctx, &req); !ok {
		return err
	}

	resp, err := h.Usecase.UpdateCamera(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update camera: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update camera")
}

func (h *CatalogHandler) DeleteCamera(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteCamera(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete camera: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete camera")
}

func (h *CatalogHandler) GetCamera(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetCamera(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get camera: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get camera")
}

func (h *CatalogHandler) ListCameras(ctx *fiber.Ctx) error {
	var req request.CameraFilter
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.ListCameras(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list cameras: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list cameras")
}

func (h *CatalogHandler) AddFeature(ctx *fiber.Ctx) error {
	var req request.Feature
	if ok, err := h.parse(ctx, &req); !ok {
		return err
	}

	resp, err := h.Usecase.AddFeature(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error add feature: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success add feature")
}

func (h *CatalogHandler) DeleteFeature(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteFeature(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete feature: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete feature")
}

func (h *CatalogHandler) CreateBanner(ctx *fiber.Ctx) error {
	var req request.Banner
	if ok, err := h.parse(ctx, &req); !ok {
		return err
	}

	resp, err := h.Usecase.CreateBanner(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create banner: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create banner")
}

func (h *CatalogHandler) DeleteBanner(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteBanner(ctx.UserContext(), ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete banner: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete banner")
}

func (h *CatalogHandler) ListBanners(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListBanners(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list banners: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list banners")
}

func (h *CatalogHandler) UploadBrandImage(ctx *fiber.Ctx) error {
	return h.uploadImage(ctx, entity.KindBrand)
}

func (h *CatalogHandler) UploadCameraImage(ctx *fiber.Ctx) error {
	return h.uploadImage(ctx, entity.KindCamera)
}

func (h *CatalogHandler) UploadBannerImage(ctx *fiber.Ctx) error {
	return h.uploadImage(ctx, entity.KindBanner)
}

func (h *CatalogHandler) uploadImage(ctx *fiber.Ctx, kind string) error {
	fh, err := ctx.FormFile("image")
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error read image: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("image file is required"))
	}

	resp, err := h.Usecase.UploadImage(ctx.UserContext(), kind, ctx.Params("id"), fh)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error upload %s image: %v", kind, err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success upload image")
}
