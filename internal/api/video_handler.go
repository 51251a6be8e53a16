package api

import (
	"fmt"
	"net/http"

	"streamhub/internal/domain"
	"streamhub/internal/schema"
	"streamhub/pkg/logger"
	"streamhub/pkg/validation"
)

type VideoHandler struct {
	service   domain.VideoService
	validate  *validation.Validator
	responder *Responder
	logger    logger.Logger
}

func NewVideoHandler(service domain.VideoService, validate *validation.Validator, responder *Responder, logger logger.Logger) *VideoHandler {
	return &VideoHandler{
		service:   service,
		validate:  validate,
		responder: responder,
		logger:    logger,
	}
}

func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r, h.validate)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	channelID, err := parseOptionalInt64(r, "channel_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	isActive, err := parseOptionalBool(r, "is_active")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	videos, err := h.service.ListVideos(domain.VideoFilter{
		Skip:      page.Skip,
		Limit:     page.Limit,
		ChannelID: channelID,
		IsActive:  isActive,
	})
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.List(w, "Success", schema.NewVideoListResponse(videos), len(videos))
}

func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "video_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	video, err := h.service.GetVideoByID(id)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Success", schema.NewVideoResponse(video))
}

func (h *VideoHandler) GetVideoByYoutubeID(w http.ResponseWriter, r *http.Request) {
	youtubeID := r.PathValue("youtube_id")

	video, err := h.service.GetVideoByYoutubeID(youtubeID)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Success", schema.NewVideoResponse(video))
}

func (h *VideoHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req schema.VideoCreateRequest

	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.responder.Error(w, err)
		return
	}

	video := req.ToDomain()
	if err := h.service.CreateVideo(video); err != nil {
		h.logger.Error("Video oluşturma başarısız", map[string]interface{}{"youtube_id": req.YoutubeID, "error": err.Error()})
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, "Video created successfully", schema.NewVideoResponse(video))
}

func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "video_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var req schema.VideoUpdateRequest

	if err := decodeJSON(r, &req); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.responder.Error(w, err)
		return
	}

	video, err := h.service.UpdateVideo(id, req.ToPatch())
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "Video updated successfully", schema.NewVideoResponse(video))
}

func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "video_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.service.DeleteVideo(id); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, fmt.Sprintf("Video %d deleted successfully", id), nil)
}

func (h *VideoHandler) IncrementViewCount(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "video_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	video, err := h.service.IncrementViewCount(id)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "View count incremented", schema.NewVideoResponse(video))
}

func (h *VideoHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/videos/{$}", h.ListVideos)
	mux.HandleFunc("GET /api/v1/videos/youtube/{youtube_id}", h.GetVideoByYoutubeID)
	mux.HandleFunc("GET /api/v1/videos/{video_id}", h.GetVideo)
	mux.HandleFunc("POST /api/v1/videos/{$}", h.CreateVideo)
	mux.HandleFunc("POST /api/v1/videos/{video_id}/view", h.IncrementViewCount)
	mux.HandleFunc("PUT /api/v1/videos/{video_id}", h.UpdateVideo)
	mux.HandleFunc("DELETE /api/v1/videos/{video_id}", h.DeleteVideo)
}
