package controllers

import (
	"QuickBlog/consts"
	"QuickBlog/dto"
	"QuickBlog/services"
	"QuickBlog/utils"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const generateTimeout = 60 * time.Second

// Prompt cố định cho pipeline SEO, parser phía sau bám theo 3 nhãn này
const seoPromptTemplate = `
	Generate SEO metadata for the following blog title.
	Blog title: "%s"

	Please respond strictly in the following format:
	Title: <catchy SEO title which should be seo friendly 60 character max>
	Description: <write in rich text format with headings like h1, h2 , h3 and paragraphs, bold, italic and bullets, underlined etc all things can be done etc of engaging blog description seo friendly min 7 paragraph max 10>
	Keywords: <5 comma-separated SEO keyword list>
`

// GenerateContent POST /api/blog/generate — sinh nội dung blog từ topic
func GenerateContent(c *gin.Context) {
	var (
		req dto.GenerateRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, consts.MsgPromptRequired)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	content, err := services.GenerateText(ctx, fmt.Sprintf("%s. Generate a blog content for this topic in simple text format.", req.Prompt))
	if err != nil {
		log.Printf("Error generating blog content: %v", err)
		utils.ResponseError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"content": content})
}

// GenerateSeo POST /api/blog/generate-seo — prompt model rồi parse text thô
// thành record SEO có cấu trúc
func GenerateSeo(c *gin.Context) {
	var (
		req dto.GenerateRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, consts.MsgPromptRequired)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	rawResponse, err := services.GenerateText(ctx, fmt.Sprintf(seoPromptTemplate, req.Prompt))
	if err != nil {
		log.Printf("Error generating SEO metadata: %v", err)
		utils.ResponseError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Parser không bao giờ fail, section thiếu thì field rỗng
	seoData := services.ParseSeoResponse(rawResponse)

	utils.ResponseSuccess(c, "", gin.H{"seo": seoData})
}

// GenerateImage POST /api/blog/generate-image — thumbnail qua Stability,
// trả data URI cho client tự upload lại khi lưu blog
func GenerateImage(c *gin.Context) {
	var (
		req dto.GenerateRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, consts.MsgPromptRequired)
		return
	}
	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, consts.MsgPromptRequired)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	imageURL, err := services.GenerateThumbnail(ctx, req.Prompt)
	if err != nil {
		log.Printf("STABILITY AI ERROR: %v", err)
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgImageGenFailed)
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"imageUrl": imageURL})
}
