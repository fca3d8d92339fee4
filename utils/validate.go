package utils

import (
	"QuickBlog/dto"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	Validator *validator.Validate = validator.New()
)

func HandlerValidation(err error) string {
	errValidator := ""
	if err == nil {
		return errValidator
	}
	if errVa, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errVa {
			switch e.Tag() {
			case "required":
				errValidator += fmt.Sprintf("%s is required, ", strings.ToLower(e.Field()))
			case "email":
				errValidator += fmt.Sprintf("%s is not a valid email, ", strings.ToLower(e.Field()))
			}
		}
		errValidator = strings.TrimSuffix(errValidator, ", ")
	}
	return errValidator
}

// Blog
func ValidateBlogPayload(data dto.BlogPayload, imageFile *multipart.FileHeader) []string {
	var validationErrors []string

	if strings.TrimSpace(data.Title) == "" {
		validationErrors = append(validationErrors, "title is required")
	}

	if strings.TrimSpace(data.Description) == "" {
		validationErrors = append(validationErrors, "description is required")
	}

	if imageFile == nil {
		validationErrors = append(validationErrors, "image is required")
	}

	return validationErrors
}
