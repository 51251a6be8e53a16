package api

import (
	"fmt"
	"net/http"

	"streamhub/internal/domain"
	"streamhub/internal/schema"
	"streamhub/pkg/logger"
	"streamhub/pkg/validation"
)

type ChannelHandler struct {
	service   domain.ChannelService
	validate  *validation.Validator
	responder *Responder
	logger    logger.Logger
}

func NewChannelHandler(service domain.ChannelService, validate *validation.Validator, responder *Responder, logger logger.Logger) *ChannelHandler {
	return &ChannelHandler{
		service:   service,
		validate:  validate,
		responder: responder,
		logger:    logger,
	}
}

func (h *ChannelHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r, h.validate)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	channels, err := h.service.ListChannels(page.Skip, page.Limit)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.List(w, "Success", schema.NewChannelListResponse(channels), len(channels))
}

func (h *ChannelHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "channel_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	channel, err := h.service.GetChannelByID(id)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Success", schema.NewChannelResponse(channel))
}

func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req schema.ChannelCreateRequest

	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.responder.Error(w, err)
		return
	}

	channel := req.ToDomain()
	if err := h.service.CreateChannel(channel); err != nil {
		h.logger.Error("Kanal oluşturma başarısız", map[string]interface{}{"name": req.Name, "error": err.Error()})
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, "Channel created successfully", schema.NewChannelResponse(channel))
}

func (h *ChannelHandler) UpdateChannel(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "channel_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var req schema.ChannelUpdateRequest

	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.responder.Error(w, err)
		return
	}

	channel, err := h.service.UpdateChannel(id, req.ToPatch())
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Channel updated successfully", schema.NewChannelResponse(channel))
}

// UpdateChannelAlt exists for backward compatibility; the ID belongs in the
// URL path.
func (h *ChannelHandler) UpdateChannelAlt(w http.ResponseWriter, r *http.Request) {
	h.responder.Error(w, domain.BadRequest("Please use PUT /{channel_id} instead"))
}

func (h *ChannelHandler) DeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "channel_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.service.DeleteChannel(id); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, fmt.Sprintf("Channel %d deleted successfully", id), nil)
}

func (h *ChannelHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/channels/{$}", h.ListChannels)
	mux.HandleFunc("GET /api/v1/channels/list", h.ListChannels)
	mux.HandleFunc("GET /api/v1/channels/{channel_id}", h.GetChannel)
	mux.HandleFunc("POST /api/v1/channels/{$}", h.CreateChannel)
	mux.HandleFunc("POST /api/v1/channels/create-channel", h.CreateChannel)
	mux.HandleFunc("PUT /api/v1/channels/{$}", h.UpdateChannelAlt)
	mux.HandleFunc("PUT /api/v1/channels/{channel_id}", h.UpdateChannel)
	mux.HandleFunc("DELETE /api/v1/channels/{channel_id}", h.DeleteChannel)
}
