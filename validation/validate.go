package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"fincalc/domain"
	"fincalc/formula"
)

var (
	patternsMu sync.Mutex
	patterns   = map[string]*regexp.Regexp{}
)

func compiled(pattern string) (*regexp.Regexp, error) {
	patternsMu.Lock()
	defer patternsMu.Unlock()

	if re, ok := patterns[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patterns[pattern] = re
	return re, nil
}

// Tag params may not carry raw commas or pipes.
var paramEscaper = strings.NewReplacer(",", "0x2C", "|", "0x7C")

var checker = newChecker()

func newChecker() *validator.Validate {
	v := validator.New()

	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "integral", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if pattern := fl.Param(); pattern != "" {
			re, err := compiled(pattern)
			if err != nil || !re.MatchString(raw) {
				return false
			}
		}
		_, err := formula.ParseDate(raw)
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// tag renders r as a validator tag for its normalized value.
func tag(r domain.ValidationRule) string {
	var parts []string
	switch r.Type {
	case domain.RuleFloat, domain.RuleInt:
		parts = append(parts, "finite")
		if r.Type == domain.RuleInt {
			parts = append(parts, "integral")
		}
		if r.Min != nil {
			parts = append(parts, "gte="+strconv.FormatFloat(*r.Min, 'f', -1, 64))
		}
		if r.Max != nil {
			parts = append(parts, "lte="+strconv.FormatFloat(*r.Max, 'f', -1, 64))
		}
	case domain.RuleEnum:
		parts = append(parts, "oneof="+strings.Join(r.Enum, " "))
	case domain.RuleBoolean:
		parts = append(parts, "boolean")
	case domain.RuleDate:
		if r.Pattern != "" {
			parts = append(parts, "isodate="+paramEscaper.Replace(r.Pattern))
		} else {
			parts = append(parts, "isodate")
		}
	}
	return strings.Join(parts, ",")
}

// normalize coerces the raw input of r to the Go type its tag expects.
func normalize(r domain.ValidationRule, inputs domain.Inputs) (any, bool) {
	switch r.Type {
	case domain.RuleFloat, domain.RuleInt:
		return inputs.Float(r.Field)
	case domain.RuleEnum:
		return inputs.String(r.Field)
	case domain.RuleBoolean:
		return inputs.Bool(r.Field)
	case domain.RuleDate:
		raw, ok := inputs[r.Field].(string)
		return raw, ok
	}
	return nil, false
}

// Validate checks inputs against every rule and returns a
// *domain.ValidationError listing each violated field in rule order, or nil.
// Optional fields that are absent are skipped.
func Validate(rules []domain.ValidationRule, inputs domain.Inputs) error {
	failed := make(map[string]bool)
	data := make(map[string]any, len(rules))
	tags := make(map[string]any, len(rules))

	for _, r := range rules {
		if !inputs.Has(r.Field) {
			if !r.Optional {
				failed[r.Field] = true
			}
			continue
		}
		v, ok := normalize(r, inputs)
		if !ok {
			failed[r.Field] = true
			continue
		}
		data[r.Field] = v
		tags[r.Field] = tag(r)
	}

	for field := range checker.ValidateMap(data, tags) {
		failed[field] = true
	}

	var fields []domain.FieldError
	for _, r := range rules {
		if failed[r.Field] {
			fields = append(fields, domain.FieldError{Field: r.Field, Message: r.Message})
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateType looks up the rules of t and validates inputs against them.
func ValidateType(t domain.CalculatorType, inputs domain.Inputs) error {
	declared, ok := rules[t]
	if !ok {
		return domain.ErrInvalidCalculatorType
	}
	return Validate(declared, inputs)
}
