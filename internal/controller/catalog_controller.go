package controller

import (
	"edu_catalog_backend/internal/service"
	"edu_catalog_backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(s *service.CatalogService) *CatalogController {
	return &CatalogController{Service: s}
}

func classNumberParam(ctx *gin.Context) (int, bool) {
	n, ok := util.ParsePositiveInt(ctx.Param("classNumber"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidClassNumber.Error())
	}
	return n, ok
}

func chapterNumberParam(ctx *gin.Context) (int, bool) {
	n, ok := util.ParsePositiveInt(ctx.Param("chapterNumber"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidChapterNumber.Error())
	}
	return n, ok
}

// @Summary 获取年级列表
// @Description 按 class_number 升序返回全部年级，附带学科数与题目总数
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ClassSummary}
// @Failure 500 {object} util.Response
// @Router /classes [get]
func (c *CatalogController) ListClasses(ctx *gin.Context) {
	classes, err := c.Service.ListClasses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, "Failed to fetch classes", err)
		return
	}
	util.Success(ctx, classes)
}

// @Summary 获取年级下的学科
// @Tags 目录
// @Produce json
// @Param classNumber path int true "年级编号"
// @Success 200 {object} util.Response{data=[]model.SubjectListing}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /classes/{classNumber}/subjects [get]
func (c *CatalogController) ListSubjects(ctx *gin.Context) {
	classNumber, ok := classNumberParam(ctx)
	if !ok {
		return
	}

	subjects, err := c.Service.ListSubjects(ctx.Request.Context(), classNumber)
	if err != nil {
		util.LogInternalError(ctx, "Failed to fetch subjects", err,
			zap.Int("class_number", classNumber),
		)
		return
	}
	util.Success(ctx, subjects)
}

// @Summary 获取学科下的章节
// @Tags 目录
// @Produce json
// @Param classNumber path int true "年级编号"
// @Param subjectSlug path string true "学科 slug"
// @Success 200 {object} util.Response{data=[]model.ChapterListing}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /classes/{classNumber}/subjects/{subjectSlug}/chapters [get]
func (c *CatalogController) ListChapters(ctx *gin.Context) {
	classNumber, ok := classNumberParam(ctx)
	if !ok {
		return
	}
	subjectSlug := ctx.Param("subjectSlug")

	chapters, err := c.Service.ListChapters(ctx.Request.Context(), classNumber, subjectSlug)
	if err != nil {
		util.LogInternalError(ctx, "Failed to fetch chapters", err,
			zap.Int("class_number", classNumber),
			zap.String("subject_slug", subjectSlug),
		)
		return
	}
	util.Success(ctx, chapters)
}

// @Summary 获取章节下的题目
// @Tags 目录
// @Produce json
// @Param classNumber path int true "年级编号"
// @Param subjectSlug path string true "学科 slug"
// @Param chapterNumber path int true "章节编号"
// @Success 200 {object} util.Response{data=[]model.QuestionListing}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /classes/{classNumber}/subjects/{subjectSlug}/chapters/{chapterNumber}/questions [get]
func (c *CatalogController) ListQuestions(ctx *gin.Context) {
	classNumber, ok := classNumberParam(ctx)
	if !ok {
		return
	}
	chapterNumber, ok := chapterNumberParam(ctx)
	if !ok {
		return
	}
	subjectSlug := ctx.Param("subjectSlug")

	questions, err := c.Service.ListQuestions(ctx.Request.Context(), classNumber, subjectSlug, chapterNumber)
	if err != nil {
		util.LogInternalError(ctx, "Failed to fetch questions", err,
			zap.Int("class_number", classNumber),
			zap.String("subject_slug", subjectSlug),
			zap.Int("chapter_number", chapterNumber),
		)
		return
	}
	util.Success(ctx, questions)
}
