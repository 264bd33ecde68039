package providers

import (
	"github.com/gookit/validate"

	"pad/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks every config section against its struct rules. Sections
// are validated one by one since rules live on the nested structs.
func (cv *CnfValidator) Validate() error {
	sections := []interface{}{
		&cv.conf.WebServer,
		&cv.conf.Sources,
		&cv.conf.Logger,
	}
	for _, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return v.Errors
		}
	}
	return nil
}
