package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Avatar colors are Tailwind background utility classes, e.g. "bg-blue-500".
var avatarColorPattern = regexp.MustCompile(`^bg-[a-z]+-[0-9]{2,3}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("avatarcolor", func(fl validator.FieldLevel) bool {
			return avatarColorPattern.MatchString(fl.Field().String())
		})
	}
}
