package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/manoharask/msme/internal/types"
)

// ConfigValidator validates configuration values.
type ConfigValidator interface {
	Validate(cfg *Config) error
}

// validatorImpl implements ConfigValidator using go-playground/validator.
type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a new ConfigValidator instance.
func NewValidator() ConfigValidator {
	return &validatorImpl{
		validate: validator.New(),
	}
}

// Validate validates the configuration and returns detailed error messages.
func (v *validatorImpl) Validate(cfg *Config) error {
	if cfg == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "configuration is nil")
	}

	if err := v.validate.Struct(cfg); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return types.WrapError(types.CONFIG_VALIDATION_FAILED, "validation error", err)
		}

		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, formatValidationError(e))
		}

		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(messages, "\n  - ")))
	}

	// Cross-field checks the struct tags cannot express.
	if cfg.LLM.Provider == "ollama" && cfg.LLM.BaseURL == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"configuration validation failed:\n  - llm.base_url is required when llm.provider is 'ollama'")
	}

	return nil
}

// formatValidationError formats a single validation error with field path
// and details.
func formatValidationError(e validator.FieldError) string {
	fieldPath := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldPath)
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", fieldPath, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got: %v)", fieldPath, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", fieldPath, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation: %s", fieldPath, e.Tag())
	}
}

// formatFieldPath converts a validator namespace like "Config.Neo4j.URI"
// into the config file's dotted lowercase path.
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
