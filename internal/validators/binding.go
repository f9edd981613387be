package validators

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
)

// Register adds the scheduling tags to gin's validator engine:
//
//	slotdate     YYYY-MM-DD
//	slottime     HH:MM
//	servicetype  Vaccination | Checkup | Grooming | Dental
//	apptstatus   Confirmed | Cancelled | Rescheduled | Completed
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"slotdate":    layout(timezone.DateLayout),
		"slottime":    layout(timezone.TimeLayout),
		"servicetype": serviceType,
		"apptstatus":  status,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func layout(l string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(l, fl.Field().String())
		return err == nil
	}
}

func serviceType(fl validator.FieldLevel) bool {
	return domain.ServiceType(fl.Field().String()).Valid()
}

func status(fl validator.FieldLevel) bool {
	return domain.Status(fl.Field().String()).Valid()
}
