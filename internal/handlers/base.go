package handlers

import (
	"context"
	"errors"

	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/video_helper/internal/intake"
	"github.com/StounhandJ/video_helper/internal/utils"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"

	routeNotFoundMessage = "Route not found."
	internalErrorMessage = "Internal server error."
)

var ErrRouteNotFound = errors.New("route not found")

// Info - health маршрут
func (h handler) Info(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, h.service.Info())
}

// Request принимает ссылку на ролик и отвечает ready со ссылкой на relay
func (h handler) Request(ctx *fasthttp.RequestCtx) {
	req, err := intake.DecodeRequest(ctx.PostBody())
	if err == nil {
		var resp *intake.Response

		resp, err = h.service.Handle(context.Background(), req)
		if err == nil {
			writeJSON(ctx, fasthttp.StatusOK, resp)

			return
		}
	}

	if errors.Is(err, intake.ErrInvalidInput) {
		requestLog(ctx).Debug(err)
		writeJSON(ctx, fasthttp.StatusBadRequest, intake.ErrorResponse(intake.InvalidInputMessage))

		return
	}

	requestLog(ctx).Error(err)
	writeJSON(ctx, fasthttp.StatusInternalServerError, intake.ErrorResponse(internalErrorMessage))
}

func (h handler) NotFound(ctx *fasthttp.RequestCtx) {
	requestLog(ctx).Debugf("%v: %s %s", ErrRouteNotFound, ctx.Method(), ctx.Path())
	writeJSON(ctx, fasthttp.StatusNotFound, intake.ErrorResponse(routeNotFoundMessage))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	body, err := easyjson.Marshal(v)
	if err != nil {
		utils.Log.Error(err)
		ctx.Error(internalErrorMessage, fasthttp.StatusInternalServerError)

		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}
