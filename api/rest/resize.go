package rest

import (
	"bytes"
	"context"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"imgresize/api/model"
	"imgresize/config"
	img "imgresize/converter/image"
	"imgresize/service"
	"imgresize/shared/log"
	"imgresize/size"
	"time"
)

const HeaderAdvisory = "X-Resize-Advisory"

type ResizeController struct {
	cfg     *config.Config
	service *service.ResizeService
	logger  *zap.Logger
}

func NewResizeController(app *fiber.App, cfg *config.Config, service *service.ResizeService, logger *zap.Logger) *ResizeController {
	i := &ResizeController{service: service, cfg: cfg, logger: logger}

	app.Post("/resize", i.Resize)

	return i
}

// Resize image
//
//	@Summary		Resize an image
//	@Description	Resizes the request body to an explicit width and height, a scale factor, or a single dimension preserving the aspect ratio.
//	@Tags			image
//	@Accept			image/jpeg,image/png,image/gif,image/tiff,image/bmp,image/webp,image/avif
//	@Produce		image/jpeg,image/png,image/gif,image/tiff,image/bmp,image/webp,image/avif
//	@Param			width	query	int		false	"Target width"
//	@Param			height	query	int		false	"Target height"
//	@Param			scale	query	number	false	"Scale factor"
//	@Param			quality	query	int		false	"Encoding quality 1-100"
//	@Param			type	query	string	false	"Output type"
//	@Param			name	query	string	false	"Source file name"
//	@Success		200		{file}	file	"Returns the resized image"
//	@Failure		400		{string}	string	"Invalid or conflicting parameters"
//	@Failure		415		{string}	string	"Unsupported image format"
//	@Router			/resize [post]
func (i *ResizeController) Resize(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second*30)
	defer cancel()
	logger := log.LoggerWithTrace(ctx, i.logger)

	params := &model.ResizeRequest{}
	if err := c.QueryParser(params); err != nil {
		logger.Error("Error parsing params", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	logger.Debug("Resizing image", zap.Any("params", params), zap.Int("bytes", len(c.Body())))

	image, err := i.service.Process(ctx, bytes.NewReader(c.Body()), *params)
	if err != nil {
		return httpError(err)
	}

	if image.Advisory != "" {
		c.Set(HeaderAdvisory, image.Advisory)
	}
	c.Set(fiber.HeaderContentType, image.Type)
	c.Set("Content-Disposition", image.ContentDisposition)

	return c.SendStream(image.Body, int(image.ContentLength))
}

func httpError(err error) error {
	if _, ok := size.ReasonOf(err); ok || errors.Is(err, model.ErrInvalidParam) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if errors.Is(err, img.ErrUnsupportedFormat) {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}
	return err
}
