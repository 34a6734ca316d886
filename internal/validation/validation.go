// Package validation membungkus validator.v10 supaya hasilnya berupa apperror.
package validation

import (
	"errors"
	"sort"
	"strings"

	"buku-tamu-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

// newValidator menambahkan tag "notblank": string berisi spasi saja dianggap kosong.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Struct memvalidasi struct dengan tag `validate`. Field yang gagal
// dilaporkan sebagai satu ValidationError.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperror.Validation("Data tidak valid")
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	sort.Strings(fields)
	return apperror.Validation("Validasi gagal: %s", strings.Join(fields, ", "))
}
