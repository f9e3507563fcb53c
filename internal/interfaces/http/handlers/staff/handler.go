// Package staff serves the staff directory and leadership profiles.
package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/staff"
	"campus/internal/domain/staff"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service    *app.Service
	members    *common.RecordHandler[*staff.StaffMember, staff.MemberDetails, staff.MemberFilter, MemberRequest]
	leadership *common.RecordHandler[*staff.Leadership, staff.LeaderDetails, staff.LeaderFilter, LeaderRequest]
	logger     logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		members: common.NewRecordHandler[*staff.StaffMember, staff.MemberDetails, staff.MemberFilter, MemberRequest](
			"staff member", svc.Members,
			common.Mapper[*staff.StaffMember, staff.MemberDetails, MemberRequest]{
				ToDetails:   func(r MemberRequest) (staff.MemberDetails, error) { return staff.MemberDetails(r), nil },
				FromDetails: func(d staff.MemberDetails) MemberRequest { return MemberRequest(d) },
				ToResponse:  toMemberResponse,
			},
			func(c *gin.Context) staff.MemberFilter {
				return staff.MemberFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					Department: c.Query("department"),
					Search:     c.Query("search"),
				}
			}, log),
		leadership: common.NewRecordHandler[*staff.Leadership, staff.LeaderDetails, staff.LeaderFilter, LeaderRequest](
			"leadership profile", svc.Leadership,
			common.Mapper[*staff.Leadership, staff.LeaderDetails, LeaderRequest]{
				ToDetails: leaderDetails, FromDetails: leaderRequest, ToResponse: toLeaderResponse,
			},
			func(c *gin.Context) staff.LeaderFilter {
				return staff.LeaderFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
				}
			}, log),
		logger: log,
	}
}

// Register mounts /members and /leadership for administrators.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.members.Register(rg.Group("/members"), read, write)
	h.leadership.Register(rg.Group("/leadership"), read, write)
}

// RegisterSelfService mounts the profile routes for the signed-in leader.
func (h *Handler) RegisterSelfService(rg *gin.RouterGroup) {
	rg.GET("/leadership/me", h.GetMyProfile)
	rg.PUT("/leadership/me", h.UpdateMyProfile)
}

// GetMyProfile handles GET /staff/leadership/me
func (h *Handler) GetMyProfile(c *gin.Context) {
	profile, err := h.service.MyProfile(c.Request.Context(), common.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toLeaderResponse(profile))
}

// UpdateMyProfile handles PUT /staff/leadership/me
func (h *Handler) UpdateMyProfile(c *gin.Context) {
	var req ProfileRequest
	if !common.BindJSON(c, &req) {
		return
	}
	profile, err := h.service.UpdateMyProfile(c.Request.Context(), common.ActorID(c), staff.ProfileChanges(req))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Profile updated", toLeaderResponse(profile))
}
