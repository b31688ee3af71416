package handler

import (
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
	validator           *validator.CustomValidator
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, validator *validator.CustomValidator) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		validator:           validator,
	}
}

func (h *NotificationHandler) GetAllNotifications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.NotificationListRequest{
		Tab:  query.Get("tab"),
		Type: query.Get("type"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	notifications, err := h.notificationUsecase.ListNotifications(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationUsecase.UnreadCount(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to count notifications")
		return
	}

	response.Success(w, http.StatusOK, "Unread count retrieved successfully", count)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	notification, err := h.notificationUsecase.MarkAsRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if err == usecase.ErrNotificationNotFound {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, "Failed to mark notification as read")
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", notification)
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	res, err := h.notificationUsecase.MarkAllAsRead(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to mark notifications as read")
		return
	}

	response.Success(w, http.StatusOK, "All notifications marked as read", res)
}
