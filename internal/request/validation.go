package request

import (
	"github.com/gin-gonic/gin/binding"

	"usercenter/internal/model"
)

// RegisterValidation installs the translated validator with the user field tags
// as gin's binding validator
func RegisterValidation() error {
	v, err := model.NewValidator()
	if err != nil {
		return err
	}
	binding.Validator = v
	return nil
}
