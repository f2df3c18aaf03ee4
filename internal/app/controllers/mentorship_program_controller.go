package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/app/services"
	"github.com/yigit/alumni/internal/middleware"
	"github.com/yigit/alumni/internal/pkg/helpers"
	"github.com/yigit/alumni/internal/pkg/identifier"
)

// Sibling gin wildcards must share a name, so the mentor type of the
// by-mentor route arrives in the "id" parameter.
const (
	programIDParam  = "id"
	mentorTypeParam = "id"
	mentorIDParam   = "mentorId"
)

// MentorshipProgramController handles mentorship program endpoints
type MentorshipProgramController struct {
	programService services.MentorshipProgramService
	opts           Options
}

// NewMentorshipProgramController creates a new MentorshipProgramController
func NewMentorshipProgramController(programService services.MentorshipProgramService, opts Options) *MentorshipProgramController {
	return &MentorshipProgramController{programService: programService, opts: opts}
}

// Create handles program creation
// @Summary Create a mentorship program
// @Description Creates a program for a faculty or alumni mentor. Every invalid field is reported.
// @Tags mentorship-program
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorshipProgramRequest true "Program"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipProgram} "Program created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-program [post]
func (c *MentorshipProgramController) Create(ctx *gin.Context) {
	body, ok := readObject(ctx)
	if !ok {
		return
	}

	req, err := dto.BindCreateMentorshipProgram(body, c.opts.StrictPayloads)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program, err := c.programService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, program)
}

// FindAll lists programs one page at a time
// @Summary List mentorship programs
// @Description Absent, non-numeric or non-positive pages fall back to page 1. The page size is fixed by the server.
// @Tags mentorship-program
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.MentorshipProgramListResponse} "Programs retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-program [get]
func (c *MentorshipProgramController) FindAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, c.opts.pageSize())

	resp, err := c.programService.FindAll(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, resp)
}

// FindOne retrieves a program by id
// @Summary Get a mentorship program
// @Tags mentorship-program
// @Produce json
// @Param id path string true "Program ID (64-bit integer)"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipProgram} "Program retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /mentorship-program/{id} [get]
func (c *MentorshipProgramController) FindOne(ctx *gin.Context) {
	id, err := identifier.ParseProgramID(ctx.Param(programIDParam))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program, err := c.programService.FindOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, program)
}

// FindByMentor lists the programs of one mentor
// @Summary List programs by mentor
// @Description Unknown mentor types are rejected before any lookup. No match yields an empty list.
// @Tags mentorship-program
// @Produce json
// @Param mentorType path string true "Mentor type" Enums(faculty, alumni)
// @Param mentorId path string true "Mentor ID (64-bit integer)"
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipProgram} "Programs retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID or mentor type"
// @Router /mentorship-program/{mentorType}/{mentorId} [get]
func (c *MentorshipProgramController) FindByMentor(ctx *gin.Context) {
	mentorID, err := identifier.ParseMentorID(ctx.Param(mentorIDParam))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	programs, err := c.programService.FindByMentor(ctx, mentorID, ctx.Param(mentorTypeParam))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, programs)
}

// Update applies a partial update
// @Summary Update a mentorship program
// @Description Only the given fields change. An empty object changes nothing and returns the current program.
// @Tags mentorship-program
// @Accept json
// @Produce json
// @Param id path string true "Program ID (64-bit integer)"
// @Param request body dto.UpdateMentorshipProgramRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipProgram} "Program updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID or payload"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /mentorship-program/{id} [put]
func (c *MentorshipProgramController) Update(ctx *gin.Context) {
	id, err := identifier.ParseProgramID(ctx.Param(programIDParam))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	body, ok := readObject(ctx)
	if !ok {
		return
	}

	update, err := dto.BindUpdateMentorshipProgram(body, c.opts.StrictPayloads)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program, err := c.programService.Update(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, program)
}

// Remove deletes a program
// @Summary Delete a mentorship program
// @Tags mentorship-program
// @Produce json
// @Param id path string true "Program ID (64-bit integer)"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipProgram} "Deleted program"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /mentorship-program/{id} [delete]
func (c *MentorshipProgramController) Remove(ctx *gin.Context) {
	id, err := identifier.ParseProgramID(ctx.Param(programIDParam))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	program, err := c.programService.Remove(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, program)
}
