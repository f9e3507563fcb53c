package admissions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/admissions"
	"campus/internal/domain/admissions"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service      *app.Service
	cycles       *common.RecordHandler[*admissions.AdmissionCycle, admissions.CycleDetails, admissions.CycleFilter, CycleRequest]
	requirements *common.RecordHandler[*admissions.Requirement, admissions.RequirementDetails, admissions.RequirementFilter, RequirementRequest]
	applicants   *common.RecordHandler[*admissions.Applicant, admissions.ApplicantDetails, admissions.ApplicantFilter, ApplicantRequest]
	status       *common.StatusHandler[*admissions.Applicant]
	logger       logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	return &Handler{
		service: svc,
		cycles: common.NewRecordHandler[*admissions.AdmissionCycle, admissions.CycleDetails, admissions.CycleFilter, CycleRequest](
			"admission cycle", svc.Cycles,
			common.Mapper[*admissions.AdmissionCycle, admissions.CycleDetails, CycleRequest]{
				ToDetails: cycleDetails, FromDetails: cycleRequest, ToResponse: toCycleResponse,
			},
			func(c *gin.Context) admissions.CycleFilter {
				return admissions.CycleFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
				}
			}, log),
		requirements: common.NewRecordHandler[*admissions.Requirement, admissions.RequirementDetails, admissions.RequirementFilter, RequirementRequest](
			"admission requirement", svc.Requirements,
			common.Mapper[*admissions.Requirement, admissions.RequirementDetails, RequirementRequest]{
				ToDetails: requirementDetails, FromDetails: requirementRequest, ToResponse: toRequirementResponse,
			},
			func(c *gin.Context) admissions.RequirementFilter {
				return admissions.RequirementFilter{
					BaseFilter: utils.ParseBaseFilter(c),
					ProgramID:  mapper.Deref(utils.QueryUint(c, "program_id")),
				}
			}, log),
		applicants: common.NewRecordHandler[*admissions.Applicant, admissions.ApplicantDetails, admissions.ApplicantFilter, ApplicantRequest](
			"applicant", svc.Applicants,
			common.Mapper[*admissions.Applicant, admissions.ApplicantDetails, ApplicantRequest]{
				ToDetails: applicantDetails, FromDetails: applicantRequest, ToResponse: toApplicantResponse,
			},
			applicantFilter, log),
		status: common.NewStatusHandler[*admissions.Applicant]("applicant", svc.ApplicantStatus, toApplicantResponse),
		logger: log,
	}
}

// Register mounts /cycles, /requirements, /applicants and /documents.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.cycles.Register(rg.Group("/cycles"), read, write)
	h.requirements.Register(rg.Group("/requirements"), read, write)

	applicants := rg.Group("/applicants")
	h.status.Register(applicants, write)
	h.applicants.Register(applicants, read, write)
	applicants.GET("/:id/documents", common.Chain(read, h.ListDocuments)...)
	applicants.POST("/:id/documents", common.Chain(write, h.AddDocument)...)

	rg.DELETE("/documents/:id", common.Chain(write, h.DeleteDocument)...)
}

func applicantFilter(c *gin.Context) admissions.ApplicantFilter {
	return admissions.ApplicantFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		Status:     c.Query("status"),
		CycleID:    mapper.Deref(utils.QueryUint(c, "cycle_id")),
		ProgramID:  mapper.Deref(utils.QueryUint(c, "program_id")),
		Search:     c.Query("search"),
	}
}

// AddDocument handles POST /applicants/:id/documents
func (h *Handler) AddDocument(c *gin.Context) {
	applicantID, ok := common.ParseID(c, "applicant")
	if !ok {
		return
	}
	var req DocumentRequest
	if !common.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.AddDocument(c.Request.Context(), admissions.DocumentDetails{
		ApplicantID:    applicantID,
		RequirementID:  req.RequirementID,
		FilePath:       req.FilePath,
		Classification: req.Classification,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toDocumentResponse(doc), "Document recorded")
}

// ListDocuments handles GET /applicants/:id/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	applicantID, ok := common.ParseID(c, "applicant")
	if !ok {
		return
	}
	docs, err := h.service.ListDocuments(c.Request.Context(), applicantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", mapper.MapSlice(docs, toDocumentResponse))
}

// DeleteDocument handles DELETE /documents/:id
func (h *Handler) DeleteDocument(c *gin.Context) {
	id, ok := common.ParseID(c, "document")
	if !ok {
		return
	}
	if err := h.service.DeleteDocument(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
