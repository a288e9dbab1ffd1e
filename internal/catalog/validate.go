package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

var validate = newValidator()

func newValidator() func(*catalogFile) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "skill", vtm.IsSkill)
	mustRegister(v, "discipline", vtm.IsDiscipline)
	mustRegister(v, "clan", vtm.IsClan)

	return func(file *catalogFile) error {
		if err := v.Struct(file); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog")
		}
		return checkUnique(file)
	}
}

// mustRegister adds a string tag backed by a name check. A tag that fails to
// register would let unknown names through, so it panics at package init.
func mustRegister(v *validator.Validate, tag string, known func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return known(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("catalog: register %q validation: %v", tag, err))
	}
}

// checkUnique enforces the name uniqueness rules struct tags cannot express
func checkUnique(file *catalogFile) error {
	vb := errors.NewValidationBuilder()

	names := make(map[string]bool)
	for _, pt := range file.PredatorTypes {
		if names[pt.Name] {
			vb.Fieldf("predator_types", "duplicate predator type %s", pt.Name)
		}
		names[pt.Name] = true

		keys := make(map[string]bool)
		for _, s := range pt.SpecialtyOptions {
			if keys[s.Key()] {
				vb.Fieldf(pt.Name, "duplicate specialty %s", s.Key())
			}
			keys[s.Key()] = true
		}

		disciplines := make(map[string]bool)
		for _, d := range pt.SubChoiceOptions {
			if disciplines[d.Name] {
				vb.Fieldf(pt.Name, "duplicate discipline %s", d.Name)
			}
			disciplines[d.Name] = true
		}

		groups := make(map[string]bool)
		for _, g := range pt.OptionGroups {
			if groups[g.Name] {
				vb.Fieldf(pt.Name, "duplicate option group %s", g.Name)
			}
			groups[g.Name] = true

			options := make(map[string]bool)
			for _, o := range g.Options {
				if options[o.Name] {
					vb.Fieldf(pt.Name+"."+g.Name, "duplicate option %s", o.Name)
				}
				options[o.Name] = true
			}
		}
	}

	return vb.Build()
}
