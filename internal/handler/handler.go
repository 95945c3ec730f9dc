package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vyasmiri21/AttendanceApp/internal/attendance"
	"github.com/vyasmiri21/AttendanceApp/internal/store"
)

type Handler struct {
	svc *attendance.Service
	db  *store.DB
}

func New(svc *attendance.Service, db *store.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

// ---------- Contract shapes ----------

type createUserRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Role       string  `json:"role" binding:"required"`
	Department *string `json:"department"`
}

type userResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department"`
}

// createAttendanceRequest uses the external camelCase field names; the
// storage columns stay snake_case (user_id, check_in, check_out).
type createAttendanceRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Status   string  `json:"status" binding:"required"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Notes    *string `json:"notes"`
}

type attendanceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Notes    *string `json:"notes"`
}

func toUserResponse(u attendance.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Department: u.Department}
}

func toUserResponses(users []attendance.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toAttendanceResponse(rec attendance.Record) attendanceResponse {
	return attendanceResponse{
		ID:       rec.ID,
		UserID:   rec.UserID,
		Date:     rec.Date,
		Status:   rec.Status,
		CheckIn:  rec.CheckIn,
		CheckOut: rec.CheckOut,
		Notes:    rec.Notes,
	}
}

func toAttendanceResponses(recs []attendance.Record) []attendanceResponse {
	out := make([]attendanceResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toAttendanceResponse(rec))
	}
	return out
}

// ---------- Health ----------

func (h *Handler) Healthz(c *gin.Context) {
	dbHealthy := h.db.Healthy(c.Request.Context())
	status := http.StatusOK
	if !dbHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "db": dbHealthy})
}

// ---------- Users ----------

func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	u, err := h.svc.CreateUser(c.Request.Context(), req.Name, req.Email, req.Role, req.Department)
	if err != nil {
		if errors.Is(err, attendance.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.svc.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, attendance.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

func (h *Handler) SearchUsers(c *gin.Context) {
	users, err := h.svc.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

// ---------- Attendance ----------

func (h *Handler) CreateAttendance(c *gin.Context) {
	var req createAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rec, err := h.svc.CreateRecord(c.Request.Context(), attendance.Record{
		UserID:   req.UserID,
		Date:     req.Date,
		Status:   req.Status,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toAttendanceResponse(rec))
}

func (h *Handler) AttendanceByUser(c *gin.Context) {
	recs, err := h.svc.RecordsByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toAttendanceResponses(recs))
}

func (h *Handler) AttendanceByDate(c *gin.Context) {
	recs, err := h.svc.RecordsByDate(c.Request.Context(), c.Param("date_str"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toAttendanceResponses(recs))
}
